package validation

import (
	"context"
	"fmt"
	"math/big"

	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
	"go.uber.org/zap"
)

// CheckGasPrice rejects intents while the network gas price is above the maximum set in
// the max-gas-price-allowed variant. It only runs while that flag is on, and a few
// setup calls are let through regardless.
func (p *Pipeline) CheckGasPrice(ctx context.Context, intent business.TransactionIntent) error {
	if !p.features.IsEnabled(ctx, constants.DappsApplication, constants.MaxGasPriceAllowedFeature) {
		return nil
	}
	if p.IsAllowedToSkipGasPriceCheck(ctx, intent) {
		return nil
	}

	maxAllowed, err := p.maxGasPriceAllowed(ctx)
	if err != nil {
		return err
	}

	current, err := p.relay.GetNetworkGasPrice(ctx)
	if err != nil {
		return fmt.Errorf("could not get current gas price for chain %d: %w", p.registry.ChainID(), err)
	}
	if current == nil {
		return fmt.Errorf("could not get current gas price for chain %d", p.registry.ChainID())
	}

	if current.Cmp(maxAllowed) > 0 {
		return txerrors.NewHighCongestionError(current, maxAllowed)
	}
	return nil
}

func (p *Pipeline) maxGasPriceAllowed(ctx context.Context) (*big.Int, error) {
	variant, ok := p.features.Variant(ctx, constants.DappsApplication, constants.MaxGasPriceAllowedFeature)
	if !ok || variant == nil || variant.Payload == nil || variant.Payload.Value == "" {
		return nil, txerrors.ErrMaxGasPriceUndefined
	}
	value, ok := new(big.Int).SetString(variant.Payload.Value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid max gas price allowed %q", variant.Payload.Value)
	}
	return value, nil
}

// IsAllowedToSkipGasPriceCheck is true for creating a collection through the v3 factory,
// approving the collection manager to spend MANA and adding the store as a collection
// minter. Undecodable data is never allowed to skip.
func (p *Pipeline) IsAllowedToSkipGasPriceCheck(ctx context.Context, intent business.TransactionIntent) bool {
	data, err := intent.CallData()
	if err != nil {
		return false
	}
	meta, ok := contracts.DecodeMetaTransaction(data)
	if !ok {
		return false
	}
	target := intent.Target()

	switch {
	case p.registry.Is(contracts.CollectionManager, target):
		args, ok := contracts.TryDecode(contracts.CollectionManagerABI, contracts.MethodCreateCollection, meta.FunctionSignature)
		if !ok {
			return false
		}
		factory, ok := args.Address("_factory")
		return ok && p.registry.Is(contracts.CollectionFactoryV3, factory.Hex())

	case p.registry.Is(contracts.MANAToken, target):
		args, ok := contracts.TryDecode(contracts.ERC20ABI, contracts.MethodApprove, meta.FunctionSignature)
		if !ok {
			return false
		}
		spender, ok := args.Address("spender")
		return ok && p.registry.Is(contracts.CollectionManager, spender.Hex())
	}

	isCollection, err := p.oracle.IsCollectionAddress(ctx, target)
	if err != nil {
		p.logger.Debug("collection lookup failed while evaluating gas price bypass",
			zap.String("contract", target), zap.Error(err))
		return false
	}
	if !isCollection {
		return false
	}

	args, ok := contracts.TryDecode(contracts.CollectionABI, contracts.MethodSetMinters, meta.FunctionSignature)
	if !ok {
		return false
	}
	minters, ok := args.Addresses("_minters")
	if !ok {
		return false
	}
	for _, minter := range minters {
		if p.registry.Is(contracts.CollectionStore, minter.Hex()) {
			return true
		}
	}
	return false
}
