package whitelist

import (
	"context"
	"time"

	"github.com/pkg/errors"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
)

// Client fetches the contract addresses document, shaped as
// { "<chain name>": { "<contract label>": "<address>" } }.
type Client struct {
	http *httpClient.HTTPClient
	url  string
}

func NewClient(url string, metrics httpClient.MetricsCollector) *Client {
	return &Client{
		http: httpClient.NewHTTPClient(
			httpClient.WithTimeout(10*time.Second),
			httpClient.WithRetryConfig(httpClient.NoRetry()),
			httpClient.WithMetricsCollector(metrics),
			httpClient.WithMiddleware(httpClient.DebugLogging()),
			httpClient.WithMetricsLabel("contract_addresses"),
		),
		url: url,
	}
}

// FetchContractAddresses downloads the document. Any non-2xx response is an error.
func (c *Client) FetchContractAddresses(ctx context.Context) (map[string]map[string]string, error) {
	resp, err := c.http.Get(ctx, c.url)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, errors.Wrapf(err, "could not get the whitelisted addresses from %s", c.url)
	}

	var doc map[string]map[string]string
	if err := c.http.ProcessJSONResponse(resp, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode whitelisted addresses")
	}
	return doc, nil
}
