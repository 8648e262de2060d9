package validation

import (
	"context"
	"math/big"

	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
)

// CheckSalePrice rejects store purchases, marketplace orders and bids priced at or below
// the configured minimum. Intents without a recognisable price pass.
func (p *Pipeline) CheckSalePrice(_ context.Context, intent business.TransactionIntent) error {
	price, ok := p.SalePrice(intent)
	if !ok {
		return nil
	}
	if price.Cmp(p.cfg.MinSaleValueInWei) <= 0 {
		p.metrics.SalePriceTooLow(intent.Target())
		return txerrors.NewInvalidSalePriceError(p.cfg.MinSaleValueInWei, price)
	}
	return nil
}

// SalePrice extracts the price in wei from a forwarded buy, executeOrder or placeBid
// call. The second result is false when the intent is not one of those sales.
func (p *Pipeline) SalePrice(intent business.TransactionIntent) (*big.Int, bool) {
	data, err := intent.CallData()
	if err != nil {
		return nil, false
	}
	meta, ok := contracts.DecodeMetaTransaction(data)
	if !ok {
		return nil, false
	}
	target := intent.Target()

	switch {
	case p.registry.Is(contracts.CollectionStore, target):
		args, ok := contracts.TryDecode(contracts.CollectionStoreABI, contracts.MethodBuy, meta.FunctionSignature)
		if !ok {
			return nil, false
		}
		return args.FirstTupleBigInt("_itemsToBuy", "Prices")

	case p.registry.Is(contracts.Marketplace, target):
		args, ok := contracts.TryDecode(contracts.MarketplaceABI, contracts.MethodExecuteOrder, meta.FunctionSignature)
		if !ok {
			return nil, false
		}
		return args.BigInt("price")

	case p.registry.Is(contracts.Bid, target):
		args, ok := contracts.TryDecode(contracts.BidABI, contracts.MethodPlaceBid, meta.FunctionSignature)
		if !ok {
			return nil, false
		}
		return args.BigInt("_price")
	}
	return nil, false
}
