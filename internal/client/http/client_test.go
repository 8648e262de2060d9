package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
	"github.com/metatx/transactions-api/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type countingCollector struct {
	errors atomic.Int32
	paths  []string
}

func (c *countingCollector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.paths = append(c.paths, path)
}
func (c *countingCollector) RecordRequestCount(method, path string, statusCode int) {}
func (c *countingCollector) RecordRequestError(method, path string)                 { c.errors.Add(1) }

func TestHTTPClient_PostDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/meta-tx/native", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"txHash":"0xabc"}`))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL+"/"),
		httpClient.WithDefaultHeader("x-api-key", "secret"),
	)

	resp, err := client.Post(context.Background(), "api/v2/meta-tx/native", map[string]string{"from": "0x1"})
	require.NoError(t, err)

	var out struct {
		TxHash string `json:"txHash"`
	}
	require.NoError(t, client.ProcessJSONResponse(resp, &out))
	assert.Equal(t, "0xabc", out.TxHash)
}

func TestHTTPClient_ErrorCarriesBodyAndHeaders(t *testing.T) {
	collector := &countingCollector{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":150}`))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL),
		httpClient.WithRetryConfig(httpClient.NoRetry()),
		httpClient.WithMetricsCollector(collector),
		httpClient.WithMetricsLabel("biconomy"),
	)

	resp, err := client.Get(context.Background(), "/tasks/status/123")
	require.Error(t, err)
	require.NotNil(t, resp)

	var httpErr *httpClient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusConflict, httpErr.StatusCode)
	assert.Equal(t, `{"code":150}`, httpErr.Body)
	assert.True(t, httpErr.IsJSON())
	assert.Equal(t, int32(1), collector.errors.Load())
	assert.Equal(t, []string{"biconomy"}, collector.paths)
}

func TestHTTPClient_RetriesRetryableStatus(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL),
		httpClient.WithRetryConfig(&httpClient.RetryConfig{
			MaxRetries:      3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			MaxElapsedTime:  time.Second,
			RetryOn:         []int{http.StatusServiceUnavailable},
		}),
	)

	resp, err := client.Get(context.Background(), "/dapps.json")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_NoRetrySendsOnce(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL),
		httpClient.WithRetryConfig(httpClient.NoRetry()),
	)

	_, err := client.Post(context.Background(), "/relays/v2/sponsored-call", map[string]string{})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestHTTPClient_InvalidPathWithoutBaseURL(t *testing.T) {
	client := httpClient.NewHTTPClient()
	_, err := client.Get(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestHTTPClient_MiddlewareOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "outer,inner", r.Header.Get("X-Trace"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	tag := func(name string) httpClient.Middleware {
		return func(next http.RoundTripper) http.RoundTripper {
			return roundTripFunc(func(req *http.Request) (*http.Response, error) {
				if prev := req.Header.Get("X-Trace"); prev != "" {
					name = prev + "," + name
				}
				req.Header.Set("X-Trace", name)
				return next.RoundTrip(req)
			})
		}
	}

	client := httpClient.NewHTTPClient(
		httpClient.WithBaseURL(server.URL),
		httpClient.WithMiddleware(tag("outer")),
		httpClient.WithMiddleware(httpClient.DebugLogging()),
		httpClient.WithMiddleware(tag("inner")),
	)

	resp, err := client.Get(context.Background(), "/")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }
