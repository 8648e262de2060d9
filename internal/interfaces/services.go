package interfaces

import (
	"context"
	"math/big"

	"github.com/metatx/transactions-api/internal/types/business"
)

// AddressOracle answers whether a contract may receive relayed calls.
type AddressOracle interface {
	IsWhitelisted(ctx context.Context, address string) (bool, error)
	IsCollectionAddress(ctx context.Context, address string) (bool, error)
	IsValidContractAddress(ctx context.Context, address string) (bool, error)
	ClearCache()
}

// RelayDispatcher picks the active relay provider per call.
type RelayDispatcher interface {
	SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error)
	GetNetworkGasPrice(ctx context.Context) (*big.Int, error)
	ActiveProvider(ctx context.Context) RelayProvider
}

// PolicyPipeline runs the ordered checks an intent must pass before it is relayed.
type PolicyPipeline interface {
	Run(ctx context.Context, intent business.TransactionIntent) error
}

// TransactionService is what the HTTP layer calls.
type TransactionService interface {
	CheckData(ctx context.Context, intent business.TransactionIntent) error
	SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error)
	GetByUserAddress(ctx context.Context, userAddress string) ([]business.TransactionRecord, error)
}
