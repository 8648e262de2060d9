package features

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/types/business"
)

// Document is the feature flag file published for one application.
type Document struct {
	Flags    map[string]bool                     `json:"flags"`
	Variants map[string]*business.FeatureVariant `json:"variants"`
}

type cachedDocument struct {
	doc       *Document
	fetchedAt time.Time
}

// Client reads feature flags from environment overrides or the remote flag service.
type Client struct {
	http     *httpClient.HTTPClient
	referer  string
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time

	mu    sync.RWMutex
	cache map[string]cachedDocument
	group singleflight.Group
}

// Config configures the features client.
type Config struct {
	BaseURL  string
	Referer  string
	CacheTTL time.Duration
	Metrics  httpClient.MetricsCollector
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		http: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(cfg.BaseURL),
			httpClient.WithTimeout(5*time.Second),
			httpClient.WithMetricsCollector(cfg.Metrics),
			httpClient.WithMetricsLabel("features"),
		),
		referer:  cfg.Referer,
		cacheTTL: cfg.CacheTTL,
		logger:   logger.OrGlobal(log),
		now:      time.Now,
		cache:    make(map[string]cachedDocument),
	}
}

// EnvKey is the variable that overrides a flag, e.g. FF_DAPPS_GELATO_RELAYER.
func EnvKey(app, feature string) string {
	return strings.ToUpper(strings.ReplaceAll(fmt.Sprintf("FF_%s_%s", app, feature), "-", "_"))
}

func flagKey(app, feature string) string {
	return app + "-" + feature
}

func (c *Client) envOverride(app, feature string) (string, bool) {
	if v := os.Getenv(EnvKey(app, feature)); v != "" {
		return v, true
	}
	// dashed form, as the flag service names it
	if v := os.Getenv(strings.ToUpper(fmt.Sprintf("FF_%s_%s", app, feature))); v != "" {
		return v, true
	}
	return "", false
}

// IsEnabled reports whether app-feature is on. An environment override wins; when the
// flag service cannot be reached the flag is treated as off.
func (c *Client) IsEnabled(ctx context.Context, app, feature string) bool {
	if v, ok := c.envOverride(app, feature); ok {
		return v == "1"
	}

	doc, err := c.document(ctx, app)
	if err != nil {
		c.logger.Error("Failed to fetch feature flags", zap.String("app", app), zap.Error(err))
		return false
	}
	return doc.Flags[flagKey(app, feature)]
}

// Variant returns the variant of app-feature when the flag is on and has one.
func (c *Client) Variant(ctx context.Context, app, feature string) (*business.FeatureVariant, bool) {
	doc, err := c.document(ctx, app)
	if err != nil {
		c.logger.Error("Failed to fetch feature flags", zap.String("app", app), zap.Error(err))
		return nil, false
	}

	key := flagKey(app, feature)
	variant, ok := doc.Variants[key]
	if !doc.Flags[key] || !ok || variant == nil {
		return nil, false
	}
	return variant, true
}

func (c *Client) document(ctx context.Context, app string) (*Document, error) {
	c.mu.RLock()
	cached, ok := c.cache[app]
	c.mu.RUnlock()
	if ok && c.now().Sub(cached.fetchedAt) < c.cacheTTL {
		return cached.doc, nil
	}

	v, err, _ := c.group.Do(app, func() (interface{}, error) {
		doc, err := c.fetch(ctx, app)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[app] = cachedDocument{doc: doc, fetchedAt: c.now()}
		c.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

func (c *Client) fetch(ctx context.Context, app string) (*Document, error) {
	var opts []httpClient.RequestOption
	if c.referer != "" {
		opts = append(opts, httpClient.WithHeader("Referer", c.referer))
	}

	resp, err := c.http.Get(ctx, "/"+app+".json", opts...)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, errors.Wrapf(err, "could not fetch feature flags for %s", app)
	}

	doc := &Document{}
	if err := c.http.ProcessJSONResponse(resp, doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode feature flags")
	}
	return doc, nil
}
