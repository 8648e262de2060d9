// Package relay chooses the relayer that submits a meta transaction.
package relay

import (
	"context"
	"errors"
	"math/big"

	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/types/business"
	"go.uber.org/zap"
)

// ErrNoProvider is returned when neither relayer is configured.
var ErrNoProvider = errors.New("no relay provider configured")

// Dispatcher sends intents through Gelato while the gelato-relayer flag is on and
// through Biconomy otherwise. The flag is read on every call.
type Dispatcher struct {
	biconomy interfaces.RelayProvider
	gelato   interfaces.RelayProvider
	features interfaces.FeatureFlags
	chainID  uint64
	logger   *zap.Logger
}

var _ interfaces.RelayDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. Either provider may be nil when it is not
// configured; the other one is then used regardless of the flag.
func NewDispatcher(chainID uint64, biconomy, gelato interfaces.RelayProvider, features interfaces.FeatureFlags, log *zap.Logger) (*Dispatcher, error) {
	if biconomy == nil && gelato == nil {
		return nil, ErrNoProvider
	}
	return &Dispatcher{
		biconomy: biconomy,
		gelato:   gelato,
		features: features,
		chainID:  chainID,
		logger:   logger.OrGlobal(log),
	}, nil
}

// ActiveProvider returns the provider the next call would use.
func (d *Dispatcher) ActiveProvider(ctx context.Context) interfaces.RelayProvider {
	useGelato := d.features.IsEnabled(ctx, constants.DappsApplication, constants.GelatoRelayerFeature)

	switch {
	case useGelato && d.gelato != nil:
		return d.gelato
	case !useGelato && d.biconomy != nil:
		return d.biconomy
	case d.gelato != nil:
		d.logger.Warn("biconomy is not configured, relaying through gelato")
		return d.gelato
	default:
		d.logger.Warn("gelato is not configured, relaying through biconomy")
		return d.biconomy
	}
}

// SendMetaTransaction relays intent and returns the transaction hash.
func (d *Dispatcher) SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error) {
	provider := d.ActiveProvider(ctx)
	d.logger.Debug("relaying meta transaction",
		zap.String("provider", provider.Name()),
		zap.String("from", intent.From),
		zap.String("contract", intent.Target()))
	return provider.SendMetaTransaction(ctx, intent)
}

// GetNetworkGasPrice asks the active provider for the current gas price in wei.
func (d *Dispatcher) GetNetworkGasPrice(ctx context.Context) (*big.Int, error) {
	return d.ActiveProvider(ctx).GetNetworkGasPrice(ctx, d.chainID)
}
