package biconomy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/metrics"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
)

// Conflict codes returned by the relayer with a 409.
const (
	codeDappLimitReached  = 150
	codeUserLimitReached  = 151
	codeAPILimitReached   = 152
	codeGasLimitReached   = 153
	codeExpectationFailed = 417
)

var conflictCodes = map[int]txerrors.ErrorCode{
	codeDappLimitReached:  txerrors.CodeDappLimitReached,
	codeUserLimitReached:  txerrors.CodeUserLimitReached,
	codeAPILimitReached:   txerrors.CodeAPILimitReached,
	codeGasLimitReached:   txerrors.CodeGasLimitReached,
	codeExpectationFailed: txerrors.CodeExpectationFailed,
}

type metaTransactionRequest struct {
	APIID  string   `json:"apiId"`
	From   string   `json:"from"`
	Params []string `json:"params"`
}

type metaTransactionResponse struct {
	TxHash  string `json:"txHash"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type gasPriceResponse struct {
	GasPrice struct {
		Value json.Number `json:"value"`
		Unit  string      `json:"unit"`
	} `json:"gasPrice"`
}

// Config configures the Biconomy relayer.
type Config struct {
	APIURL string
	APIID  string
	APIKey string
}

// Client relays meta transactions synchronously through Biconomy.
type Client struct {
	http    *httpClient.HTTPClient
	apiID   string
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewClient(cfg Config, registry *metrics.Registry, log *zap.Logger) (*Client, error) {
	if cfg.APIURL == "" || cfg.APIID == "" || cfg.APIKey == "" {
		return nil, errors.New("biconomy API URL, API ID and API key are required")
	}

	return &Client{
		http: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(cfg.APIURL),
			httpClient.WithDefaultHeader("x-api-key", cfg.APIKey),
			httpClient.WithTimeout(60*time.Second),
			httpClient.WithRetryConfig(httpClient.NoRetry()),
			httpClient.WithMetricsCollector(registry),
			httpClient.WithMetricsLabel(constants.BiconomyProvider),
		),
		apiID:   cfg.APIID,
		metrics: registry,
		logger:  logger.OrGlobal(log),
	}, nil
}

func (c *Client) Name() string {
	return constants.BiconomyProvider
}

// SendMetaTransaction posts the intent and returns the relayed transaction hash.
func (c *Client) SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error) {
	body := metaTransactionRequest{APIID: c.apiID, From: intent.From, Params: intent.Params}

	resp, err := c.http.Post(ctx, "/api/v2/meta-tx/native", body)
	var httpErr *httpClient.HTTPError
	if err != nil && !errors.As(err, &httpErr) {
		return "", fmt.Errorf("failed to send meta transaction to biconomy: %w", err)
	}

	if httpErr == nil && resp.StatusCode == http.StatusOK {
		var out metaTransactionResponse
		if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
			return "", fmt.Errorf("failed to decode biconomy response: %w", err)
		}
		c.metrics.BiconomySent(intent.Target())
		return out.TxHash, nil
	}

	defer resp.Body.Close()
	return "", c.relayError(resp.StatusCode, httpErr, intent)
}

func (c *Client) relayError(status int, httpErr *httpClient.HTTPError, intent business.TransactionIntent) error {
	var message string
	if httpErr != nil {
		message = httpErr.Body
	}
	code := txerrors.CodeInvalidTransaction

	switch status {
	case http.StatusConflict:
		var out metaTransactionResponse
		if err := json.Unmarshal([]byte(message), &out); err == nil {
			if mapped, ok := conflictCodes[out.Code]; ok {
				code = mapped
			}
			if out.Message != "" {
				message = out.Message
			}
		}
		c.logger.Info("Transaction relaying error", zap.String("message", message), zap.String("code", string(code)))
		c.metrics.BiconomyLimitReached(string(code))
	case http.StatusExpectationFailed:
		code = txerrors.CodeExpectationFailed
		c.logger.Info("Transaction relaying error: cannot estimate gas")
		c.metrics.BiconomyCannotEstimateGas(intent.Target())
	default:
		c.logger.Info("Transaction relaying error: server error", zap.Int("status", status))
		c.metrics.BiconomyRelayError(intent.Target())
	}

	return txerrors.NewInvalidTransactionError(
		fmt.Sprintf("An error occurred trying to send the meta transaction. Response: %s. %s", message, http.StatusText(status)),
		code,
	)
}

// GetNetworkGasPrice asks Biconomy for the gas price of chainID, in wei.
func (c *Client) GetNetworkGasPrice(ctx context.Context, chainID uint64) (*big.Int, error) {
	resp, err := c.http.Get(ctx, "/api/v1/gas-price", httpClient.WithQueryParam("networkId", strconv.FormatUint(chainID, 10)))
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("could not fetch the gas price from biconomy: %w", err)
	}

	var out gasPriceResponse
	if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
		return nil, fmt.Errorf("failed to decode biconomy gas price: %w", err)
	}
	return ParseUnits(out.GasPrice.Value.String(), out.GasPrice.Unit)
}

var unitDecimals = map[string]int{
	"wei":    0,
	"kwei":   3,
	"mwei":   6,
	"gwei":   9,
	"szabo":  12,
	"finney": 15,
	"ether":  18,
}

// ParseUnits converts a decimal amount expressed in unit (a unit name or a number
// of decimals) into an exact integer amount of wei.
func ParseUnits(value, unit string) (*big.Int, error) {
	decimals, ok := unitDecimals[strings.ToLower(unit)]
	if !ok {
		d, err := strconv.Atoi(unit)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("unknown unit %q", unit)
		}
		decimals = d
	}

	whole, fraction, _ := strings.Cut(strings.TrimSpace(value), ".")
	if whole == "" {
		whole = "0"
	}
	fraction = strings.TrimRight(fraction, "0")
	if len(fraction) > decimals {
		return nil, fmt.Errorf("value %q has more decimals than %s allows", value, unit)
	}

	digits := whole + fraction + strings.Repeat("0", decimals-len(fraction))
	amount, ok := new(big.Int).SetString(digits, 10)
	if !ok || amount.Sign() < 0 {
		return nil, fmt.Errorf("invalid amount %q", value)
	}
	return amount, nil
}
