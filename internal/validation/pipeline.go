// Package validation holds the policy checks a meta transaction must pass before it is
// handed to a relayer.
package validation

import (
	"context"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/metrics"
	"github.com/metatx/transactions-api/internal/types/business"
	"go.uber.org/zap"
)

// Check is a single policy. It returns nil when the intent passes.
type Check func(ctx context.Context, intent business.TransactionIntent) error

// Config holds the policy limits.
type Config struct {
	MaxTransactionsPerDay   int64
	MinSaleValueInWei       *big.Int
	EstimateGasCheckEnabled bool
}

// Dependencies are the collaborators the checks read from. Chain is only needed when
// the gas estimation check is enabled.
type Dependencies struct {
	Registry *contracts.Registry
	Oracle   interfaces.AddressOracle
	Features interfaces.FeatureFlags
	Relay    interfaces.RelayDispatcher
	Ledger   db.Querier
	Chain    interfaces.ChainClient
	Metrics  *metrics.Registry
	Logger   *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Pipeline runs the checks in order and stops at the first failure.
type Pipeline struct {
	cfg      Config
	registry *contracts.Registry
	oracle   interfaces.AddressOracle
	features interfaces.FeatureFlags
	relay    interfaces.RelayDispatcher
	ledger   db.Querier
	chain    interfaces.ChainClient
	metrics  *metrics.Registry
	logger   *zap.Logger
	validate *validator.Validate

	now func() time.Time
}

var _ interfaces.PolicyPipeline = (*Pipeline)(nil)

// NewPipeline creates a pipeline. A nil minimum sale value means zero.
func NewPipeline(cfg Config, deps Dependencies) *Pipeline {
	if cfg.MinSaleValueInWei == nil {
		cfg.MinSaleValueInWei = new(big.Int)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	p := &Pipeline{
		cfg:      cfg,
		registry: deps.Registry,
		oracle:   deps.Oracle,
		features: deps.Features,
		relay:    deps.Relay,
		ledger:   deps.Ledger,
		chain:    deps.Chain,
		metrics:  deps.Metrics,
		logger:   logger.OrGlobal(deps.Logger),
		validate: validate,
		now:      deps.Clock,
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p
}

type namedCheck struct {
	name  string
	check Check
}

func (p *Pipeline) checks() []namedCheck {
	checks := []namedCheck{
		{"schema", p.CheckSchema},
		{"gas_price", p.CheckGasPrice},
		{"sale_price", p.CheckSalePrice},
		{"contract_address", p.CheckContractAddress},
		{"quota", p.CheckQuota},
	}
	if p.cfg.EstimateGasCheckEnabled {
		checks = append(checks, namedCheck{"estimated_gas", p.CheckEstimatedGas})
	}
	return checks
}

// Run executes every check in order and returns the first failure unchanged so callers
// can match on its type.
func (p *Pipeline) Run(ctx context.Context, intent business.TransactionIntent) error {
	for _, c := range p.checks() {
		if err := c.check(ctx, intent); err != nil {
			p.logger.Info("transaction rejected",
				zap.String("check", c.name),
				zap.String("from", intent.From),
				zap.String("contract", intent.Target()),
				zap.Error(err))
			return err
		}
	}
	return nil
}
