// Package http is the JSON client shared by the relayer, flag, whitelist and subgraph
// clients. It records every upstream call through a MetricsCollector.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/metatx/transactions-api/internal/logger"
)

type RequestOption func(*http.Request)

type ClientOption func(*HTTPClient)

// Middleware wraps the transport. Middlewares added first run outermost.
type Middleware func(http.RoundTripper) http.RoundTripper

// HTTPError is an upstream response with status >= 400. Body holds the full payload.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Method     string
	Body       string
	Header     http.Header
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s failed with status %d %s: %s", e.Method, e.URL, e.StatusCode, e.Status, e.Body)
}

// IsJSON reports whether the error response declared a JSON content type.
func (e *HTTPError) IsJSON() bool {
	return e.Header != nil && strings.Contains(e.Header.Get("Content-Type"), "application/json")
}

// MetricsCollector receives one observation per upstream call.
type MetricsCollector interface {
	RecordRequestDuration(method, path string, statusCode int, duration time.Duration)
	RecordRequestCount(method, path string, statusCode int)
	RecordRequestError(method, path string)
}

type noopCollector struct{}

func (noopCollector) RecordRequestDuration(string, string, int, time.Duration) {}
func (noopCollector) RecordRequestCount(string, string, int)                   {}
func (noopCollector) RecordRequestError(string, string)                        {}

// RetryConfig retries idempotent reads. Relayer submissions use NoRetry.
type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	RetryOn         []int
}

// DefaultRetryConfig retries timeouts, throttling and gateway errors three times.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      3,
		InitialInterval: 100 * time.Millisecond,
		MaxInterval:     10 * time.Second,
		MaxElapsedTime:  30 * time.Second,
		RetryOn: []int{
			http.StatusRequestTimeout,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout,
		},
	}
}

// NoRetry sends every request exactly once.
func NoRetry() *RetryConfig {
	return nil
}

func (r *RetryConfig) enabled() bool {
	return r != nil && r.MaxRetries > 0
}

func (r *RetryConfig) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.InitialInterval
	b.MaxInterval = r.MaxInterval
	b.MaxElapsedTime = r.MaxElapsedTime
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.MaxRetries)), ctx)
}

// HTTPClient sends JSON requests to one upstream.
type HTTPClient struct {
	client       *http.Client
	baseURL      string
	headers      http.Header
	retry        *RetryConfig
	middlewares  []Middleware
	metrics      MetricsCollector
	metricsLabel string
}

func NewHTTPClient(options ...ClientOption) *HTTPClient {
	c := &HTTPClient{
		client:  &http.Client{Timeout: 30 * time.Second},
		headers: http.Header{},
		retry:   DefaultRetryConfig(),
		metrics: noopCollector{},
	}
	c.headers.Set("Content-Type", "application/json")
	c.headers.Set("Accept", "application/json")

	for _, option := range options {
		option(c)
	}

	if len(c.middlewares) > 0 {
		transport := http.DefaultTransport
		for i := len(c.middlewares) - 1; i >= 0; i-- {
			transport = c.middlewares[i](transport)
		}
		c.client.Transport = transport
	}
	return c
}

func WithBaseURL(baseURL string) ClientOption {
	return func(c *HTTPClient) { c.baseURL = strings.TrimSuffix(baseURL, "/") }
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *HTTPClient) { c.headers.Set(key, value) }
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) { c.client.Timeout = timeout }
}

// WithRetryConfig replaces the retry policy. nil disables retries.
func WithRetryConfig(config *RetryConfig) ClientOption {
	return func(c *HTTPClient) { c.retry = config }
}

func WithMiddleware(middleware Middleware) ClientOption {
	return func(c *HTTPClient) { c.middlewares = append(c.middlewares, middleware) }
}

func WithMetricsCollector(collector MetricsCollector) ClientOption {
	return func(c *HTTPClient) {
		if collector != nil {
			c.metrics = collector
		}
	}
}

// WithMetricsLabel is used as the path label instead of the request path, so task ids
// and addresses never become label values.
func WithMetricsLabel(label string) ClientOption {
	return func(c *HTTPClient) { c.metricsLabel = label }
}

func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) { req.Header.Set(key, value) }
}

func WithQueryParam(key, value string) RequestOption {
	return func(req *http.Request) {
		q := req.URL.Query()
		q.Add(key, value)
		req.URL.RawQuery = q.Encode()
	}
}

func (c *HTTPClient) Get(ctx context.Context, path string, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodGet, path, nil, options...)
}

// Post sends body encoded as JSON.
func (c *HTTPClient) Post(ctx context.Context, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	return c.DoRequest(ctx, http.MethodPost, path, body, options...)
}

func (c *HTTPClient) resolve(path string) (string, error) {
	if c.baseURL != "" {
		return c.baseURL + "/" + strings.TrimPrefix(path, "/"), nil
	}
	if _, err := url.ParseRequestURI(path); err != nil {
		return "", fmt.Errorf("invalid path used without base URL: %s, error: %w", path, err)
	}
	return path, nil
}

func (c *HTTPClient) build(ctx context.Context, method, target string, payload []byte, options []RequestOption) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers.Clone()
	for _, option := range options {
		option(req)
	}
	return req, nil
}

// DoRequest sends the request, retrying per the client's policy. A response with status
// >= 400 is returned together with an *HTTPError; its body stays readable.
func (c *HTTPClient) DoRequest(ctx context.Context, method, path string, body interface{}, options ...RequestOption) (*http.Response, error) {
	target, err := c.resolve(path)
	if err != nil {
		return nil, err
	}

	var payload []byte
	if body != nil {
		if payload, err = json.Marshal(body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	start := time.Now()
	var resp *http.Response
	attempt := func() error {
		req, err := c.build(ctx, method, target, payload, options)
		if err != nil {
			return backoff.Permanent(err)
		}
		resp, err = c.client.Do(req)
		if err != nil {
			return err
		}
		if c.retry.enabled() && slices.Contains(c.retry.RetryOn, resp.StatusCode) {
			drain(resp)
			return fmt.Errorf("retryable status code: %d", resp.StatusCode)
		}
		return nil
	}

	if c.retry.enabled() {
		err = backoff.Retry(attempt, c.retry.backOff(ctx))
	} else {
		err = attempt()
	}

	label := c.metricsLabel
	if label == "" {
		label = path
	}
	log := logger.OrGlobal(nil).With(
		zap.String("method", method),
		zap.String("upstream", label),
		zap.Duration("duration", time.Since(start)),
	)

	if err != nil {
		c.observe(method, label, 0, start, true)
		log.Error("HTTP request failed", zap.String("url", target), zap.Error(err))
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode < http.StatusBadRequest {
		c.observe(method, label, resp.StatusCode, start, false)
		log.Debug("HTTP request successful", zap.Int("status", resp.StatusCode))
		return resp, nil
	}

	c.observe(method, label, resp.StatusCode, start, true)
	httpErr := errorFromResponse(resp, method, target)
	resp.Body = io.NopCloser(strings.NewReader(httpErr.Body))
	log.Warn("HTTP error response", zap.Int("status", resp.StatusCode), zap.String("body", httpErr.Body))
	return resp, httpErr
}

func (c *HTTPClient) observe(method, label string, status int, start time.Time, failed bool) {
	c.metrics.RecordRequestDuration(method, label, status, time.Since(start))
	c.metrics.RecordRequestCount(method, label, status)
	if failed {
		c.metrics.RecordRequestError(method, label)
	}
}

// errorFromResponse reads and closes resp.Body.
func errorFromResponse(resp *http.Response, method, target string) *HTTPError {
	var payload []byte
	if resp.Body != nil {
		payload, _ = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
	}
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		URL:        target,
		Method:     method,
		Body:       string(payload),
		Header:     resp.Header,
	}
}

func drain(resp *http.Response) {
	if resp.Body != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}

// ProcessJSONResponse decodes resp into target and closes the body.
func (c *HTTPClient) ProcessJSONResponse(resp *http.Response, target interface{}) error {
	if resp.StatusCode >= http.StatusBadRequest {
		return errorFromResponse(resp, resp.Request.Method, resp.Request.URL.String())
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// DebugLogging logs every round trip at debug level and transport failures as errors.
func DebugLogging() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripper(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			log := logger.OrGlobal(nil).With(
				zap.String("method", req.Method),
				zap.String("host", req.URL.Host),
				zap.String("path", req.URL.Path),
			)

			resp, err := next.RoundTrip(req)
			if err != nil {
				log.Error("Upstream round trip failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
				return resp, err
			}
			log.Debug("Upstream round trip", zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(start)))
			return resp, nil
		})
	}
}

type roundTripper func(*http.Request) (*http.Response, error)

func (f roundTripper) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
