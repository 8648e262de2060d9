package subgraph

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
	"github.com/metatx/transactions-api/internal/helpers"
)

const (
	collectionQuery = `query getCollection($id: String!) {
  collections(where: { id: $id }, first: 1) {
    id
  }
}`

	collectionsPageQuery = `query getCollections($first: Int!, $lastId: String!) {
  collections(first: $first, where: { id_gt: $lastId }, orderBy: id, orderDirection: asc) {
    id
  }
}`
)

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type collectionsData struct {
	Collections []struct {
		ID string `json:"id"`
	} `json:"collections"`
}

// Client queries the collections subgraph.
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
			httpClient.WithMetricsLabel("subgraph"),
		),
		url: url,
	}
}

// Query runs a GraphQL query and decodes its data into target.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, target interface{}) error {
	resp, err := c.http.Post(ctx, c.url, graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return errors.Wrap(err, "subgraph request failed")
	}

	var out graphQLResponse
	if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
		return errors.Wrap(err, "failed to decode subgraph response")
	}
	if len(out.Errors) > 0 {
		messages := make([]string, 0, len(out.Errors))
		for _, e := range out.Errors {
			messages = append(messages, e.Message)
		}
		return errors.Errorf("subgraph query failed: %s", strings.Join(messages, "; "))
	}
	if err := json.Unmarshal(out.Data, target); err != nil {
		return errors.Wrap(err, "failed to decode subgraph data")
	}
	return nil
}

// CollectionExists reports whether the subgraph knows a collection at address.
func (c *Client) CollectionExists(ctx context.Context, address string) (bool, error) {
	var data collectionsData
	if err := c.Query(ctx, collectionQuery, map[string]interface{}{"id": helpers.NormalizeAddress(address)}, &data); err != nil {
		return false, err
	}
	return len(data.Collections) > 0, nil
}

// ListCollections returns up to first collection ids greater than afterID.
func (c *Client) ListCollections(ctx context.Context, first int, afterID string) ([]string, error) {
	var data collectionsData
	if err := c.Query(ctx, collectionsPageQuery, map[string]interface{}{"first": first, "lastId": afterID}, &data); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(data.Collections))
	for _, collection := range data.Collections {
		ids = append(ids, collection.ID)
	}
	return ids, nil
}
