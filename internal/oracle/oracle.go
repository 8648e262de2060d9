package oracle

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// preloadPageSize is the largest page the collections subgraph serves.
const preloadPageSize = 1000

// snapshot is an immutable view of the whitelist document for one chain.
type snapshot struct {
	addresses map[string]struct{}
	fetchedAt time.Time
}

// Oracle answers whether a contract may receive relayed calls. It owns the whitelist
// snapshot and the positive collection cache.
type Oracle struct {
	whitelist   interfaces.WhitelistSource
	collections interfaces.CollectionSource
	chainName   string
	interval    time.Duration
	logger      *zap.Logger

	current         atomic.Pointer[snapshot]
	refreshGroup    singleflight.Group
	knownCollection *xsync.MapOf[string, struct{}]

	now func() time.Time
}

// Config holds the oracle settings.
type Config struct {
	ChainID         uint64
	RefreshInterval time.Duration
}

// New creates an Oracle for the configured chain.
func New(cfg Config, whitelist interfaces.WhitelistSource, collections interfaces.CollectionSource, log *zap.Logger) (*Oracle, error) {
	chainName, err := contracts.ChainName(cfg.ChainID)
	if err != nil {
		return nil, err
	}
	return &Oracle{
		whitelist:       whitelist,
		collections:     collections,
		chainName:       chainName,
		interval:        cfg.RefreshInterval,
		logger:          logger.OrGlobal(log),
		knownCollection: xsync.NewMapOf[string, struct{}](),
		now:             time.Now,
	}, nil
}

var _ interfaces.AddressOracle = (*Oracle)(nil)

// IsWhitelisted reports whether address is listed in the remote contracts document for
// the oracle's chain. A stale or empty snapshot is refreshed first and a failed refresh
// is returned as an error.
func (o *Oracle) IsWhitelisted(ctx context.Context, address string) (bool, error) {
	snap, err := o.snapshot(ctx)
	if err != nil {
		return false, err
	}
	_, ok := snap.addresses[helpers.NormalizeAddress(address)]
	return ok, nil
}

func (o *Oracle) snapshot(ctx context.Context) (*snapshot, error) {
	snap := o.current.Load()
	if snap != nil && len(snap.addresses) > 0 && o.now().Sub(snap.fetchedAt) <= o.interval {
		return snap, nil
	}

	// The flight is shared, so it must not die with the caller that started it.
	flight := o.refreshGroup.DoChan("whitelist", func() (interface{}, error) {
		return o.refresh(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-flight:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*snapshot), nil
	}
}

func (o *Oracle) refresh(ctx context.Context) (*snapshot, error) {
	document, err := o.whitelist.FetchContractAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get the whitelisted addresses: %w", err)
	}

	labels := document[o.chainName]
	next := &snapshot{
		addresses: make(map[string]struct{}, len(labels)),
		fetchedAt: o.now(),
	}
	for _, address := range labels {
		next.addresses[helpers.NormalizeAddress(address)] = struct{}{}
	}
	o.current.Store(next)

	o.logger.Debug("whitelist refreshed",
		zap.String("chain", o.chainName),
		zap.Int("addresses", len(next.addresses)))
	return next, nil
}

// IsCollectionAddress reports whether address is a known collection. Positive answers
// are cached for the life of the oracle; negative answers always go back to the subgraph.
func (o *Oracle) IsCollectionAddress(ctx context.Context, address string) (bool, error) {
	address = helpers.NormalizeAddress(address)
	if _, ok := o.knownCollection.Load(address); ok {
		return true, nil
	}

	exists, err := o.collections.CollectionExists(ctx, address)
	if err != nil {
		return false, fmt.Errorf("could not query collection %s: %w", address, err)
	}
	if exists {
		o.knownCollection.Store(address, struct{}{})
	}
	return exists, nil
}

// IsValidContractAddress is true when address is whitelisted or a collection. Both
// lookups run concurrently and an error from either is returned.
func (o *Oracle) IsValidContractAddress(ctx context.Context, address string) (bool, error) {
	var isCollection, isWhitelisted bool

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		isCollection, err = o.IsCollectionAddress(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		isWhitelisted, err = o.IsWhitelisted(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return false, err
	}

	return isCollection || isWhitelisted, nil
}

// ClearCache drops the whitelist snapshot and every cached collection.
func (o *Oracle) ClearCache() {
	o.current.Store(nil)
	o.knownCollection.Clear()
}

// PreloadCollections pages through every collection in the subgraph and fills the
// positive cache. It returns the number of collections cached.
func (o *Oracle) PreloadCollections(ctx context.Context) (int, error) {
	var (
		lastID string
		total  int
	)
	for {
		page, err := o.collections.ListCollections(ctx, preloadPageSize, lastID)
		if err != nil {
			return total, fmt.Errorf("failed to preload collections after %d: %w", total, err)
		}
		for _, id := range page {
			o.knownCollection.Store(helpers.NormalizeAddress(id), struct{}{})
		}
		total += len(page)
		if len(page) < preloadPageSize {
			break
		}
		lastID = page[len(page)-1]
	}

	o.logger.Info("collections preloaded", zap.Int("count", total))
	return total, nil
}
