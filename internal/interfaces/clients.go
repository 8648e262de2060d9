package interfaces

import (
	"context"
	"math/big"

	"github.com/metatx/transactions-api/internal/client/aws"
	"github.com/metatx/transactions-api/internal/types/business"
)

// FeatureFlags answers feature flag questions for an application.
type FeatureFlags interface {
	IsEnabled(ctx context.Context, app, feature string) bool
	Variant(ctx context.Context, app, feature string) (*business.FeatureVariant, bool)
}

// WhitelistSource fetches the remote document of allowed contracts, keyed by chain name
// and then by contract label.
type WhitelistSource interface {
	FetchContractAddresses(ctx context.Context) (map[string]map[string]string, error)
}

// CollectionSource looks collections up in the collections subgraph.
type CollectionSource interface {
	CollectionExists(ctx context.Context, address string) (bool, error)
	ListCollections(ctx context.Context, first int, afterID string) ([]string, error)
}

// ChainClient is the subset of a JSON-RPC node the service needs.
type ChainClient interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, from, to string, data []byte) (uint64, error)
}

// RelayProvider submits an intent to a relayer and reports the network gas price it sees.
type RelayProvider interface {
	Name() string
	SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error)
	GetNetworkGasPrice(ctx context.Context, chainID uint64) (*big.Int, error)
}

// EventPublisher announces relayed transactions to downstream consumers.
type EventPublisher interface {
	PublishRelayEvent(ctx context.Context, event aws.RelayEvent) error
}
