package features

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const dappsDocument = `{
	"flags": {"dapps-gelato-relayer": true, "dapps-max-gas-price-allowed": true, "dapps-off": false},
	"variants": {
		"dapps-max-gas-price-allowed": {"name": "limit", "enabled": true, "payload": {"type": "string", "value": "2000000000"}},
		"dapps-off": {"name": "off", "enabled": true, "payload": {"type": "string", "value": "1"}}
	}
}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/dapps.json", r.URL.Path)
		assert.Equal(t, "https://relay.local", r.Header.Get("Referer"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func newClient(url string) *Client {
	return NewClient(Config{BaseURL: url, Referer: "https://relay.local", CacheTTL: time.Minute}, zap.NewNop())
}

func TestClient_IsEnabled(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, dappsDocument)
	client := newClient(server.URL)
	ctx := context.Background()

	assert.True(t, client.IsEnabled(ctx, "dapps", "gelato-relayer"))
	assert.False(t, client.IsEnabled(ctx, "dapps", "off"))
	assert.False(t, client.IsEnabled(ctx, "dapps", "missing"))
}

func TestClient_EnvOverride(t *testing.T) {
	server, calls := newTestServer(t, http.StatusOK, dappsDocument)
	client := newClient(server.URL)

	t.Setenv("FF_DAPPS_GELATO_RELAYER", "0")
	assert.False(t, client.IsEnabled(context.Background(), "dapps", "gelato-relayer"))

	t.Setenv("FF_DAPPS_GELATO_RELAYER", "1")
	assert.True(t, client.IsEnabled(context.Background(), "dapps", "gelato-relayer"))
	assert.Equal(t, int32(0), calls.Load())
	assert.Equal(t, "FF_DAPPS_MAX_GAS_PRICE_ALLOWED", EnvKey("dapps", "max-gas-price-allowed"))
}

func TestClient_Variant(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, dappsDocument)
	client := newClient(server.URL)
	ctx := context.Background()

	variant, ok := client.Variant(ctx, "dapps", "max-gas-price-allowed")
	require.True(t, ok)
	assert.Equal(t, "2000000000", variant.Payload.Value)

	_, ok = client.Variant(ctx, "dapps", "off")
	assert.False(t, ok, "variant of a disabled flag")

	_, ok = client.Variant(ctx, "dapps", "gelato-relayer")
	assert.False(t, ok, "flag without variant")
}

func TestClient_CachesWithinTTL(t *testing.T) {
	server, calls := newTestServer(t, http.StatusOK, dappsDocument)
	client := newClient(server.URL)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	client.now = func() time.Time { return now }
	ctx := context.Background()

	client.IsEnabled(ctx, "dapps", "gelato-relayer")
	client.Variant(ctx, "dapps", "max-gas-price-allowed")
	assert.Equal(t, int32(1), calls.Load())

	now = now.Add(2 * time.Minute)
	client.IsEnabled(ctx, "dapps", "gelato-relayer")
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_FetchFailureIsDisabled(t *testing.T) {
	server, _ := newTestServer(t, http.StatusNotFound, "not found")
	client := newClient(server.URL)

	assert.False(t, client.IsEnabled(context.Background(), "dapps", "gelato-relayer"))
	_, ok := client.Variant(context.Background(), "dapps", "max-gas-price-allowed")
	assert.False(t, ok)
}
