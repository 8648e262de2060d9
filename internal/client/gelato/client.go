package gelato

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	httpClient "github.com/metatx/transactions-api/internal/client/http"
	"github.com/metatx/transactions-api/internal/constants"
	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/metrics"
	"github.com/metatx/transactions-api/internal/txerrors"
	"github.com/metatx/transactions-api/internal/types/business"
)

// TaskState is the lifecycle state of a relay task.
type TaskState string

const (
	CheckPending           TaskState = "CheckPending"
	ExecPending            TaskState = "ExecPending"
	WaitingForConfirmation TaskState = "WaitingForConfirmation"
	ExecSuccess            TaskState = "ExecSuccess"
	ExecReverted           TaskState = "ExecReverted"
	Cancelled              TaskState = "Cancelled"
)

const unknownErrorMessage = "Unknown error"

var noBalanceMessages = []string{
	"No available token balance",
	"1Balance tokens could not be selected",
}

type sponsoredCallRequest struct {
	ChainID       uint64 `json:"chainId"`
	Target        string `json:"target"`
	Data          string `json:"data"`
	SponsorAPIKey string `json:"sponsorApiKey"`
}

type sponsoredCallResponse struct {
	TaskID string `json:"taskId"`
}

type taskStatusResponse struct {
	Task struct {
		TaskID           string    `json:"taskId"`
		TaskState        TaskState `json:"taskState"`
		LastCheckMessage string    `json:"lastCheckMessage"`
		TransactionHash  string    `json:"transactionHash"`
	} `json:"task"`
}

// GasPricer supplies the current network gas price.
type GasPricer interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
}

// Config configures the Gelato relayer.
type Config struct {
	APIURL             string
	APIKey             string
	ChainID            uint64
	MaxStatusChecks    int
	SleepBetweenChecks time.Duration
	ForwarderAddress   string
}

// Client relays meta transactions through Gelato sponsored calls and polls the task
// until a transaction hash is known.
type Client struct {
	http      *httpClient.HTTPClient
	cfg       Config
	gasPricer GasPricer
	metrics   *metrics.Registry
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error
}

func NewClient(cfg Config, gasPricer GasPricer, registry *metrics.Registry, log *zap.Logger) (*Client, error) {
	if cfg.APIURL == "" || cfg.APIKey == "" {
		return nil, errors.New("gelato API URL and API key are required")
	}
	if cfg.ForwarderAddress == "" {
		return nil, errors.New("gelato requires the meta transaction forwarder address")
	}
	if cfg.MaxStatusChecks <= 0 {
		return nil, errors.New("gelato max status checks must be positive")
	}

	return &Client{
		http: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(cfg.APIURL),
			httpClient.WithTimeout(30*time.Second),
			httpClient.WithRetryConfig(httpClient.NoRetry()),
			httpClient.WithMetricsCollector(registry),
			httpClient.WithMetricsLabel(constants.GelatoProvider),
		),
		cfg:       cfg,
		gasPricer: gasPricer,
		metrics:   registry,
		logger:    logger.OrGlobal(log),
		sleep:     sleepContext,
	}, nil
}

func (c *Client) Name() string {
	return constants.GelatoProvider
}

// SendMetaTransaction wraps the intent in forwardMetaTx, submits it as a sponsored
// call and waits for the task to report a transaction hash.
func (c *Client) SendMetaTransaction(ctx context.Context, intent business.TransactionIntent) (string, error) {
	if len(intent.Params) != 2 {
		return "", fmt.Errorf("expected 2 params, got %d", len(intent.Params))
	}
	callData, err := intent.CallData()
	if err != nil {
		return "", fmt.Errorf("invalid call data: %w", err)
	}
	data, err := contracts.EncodeForwardMetaTx(intent.Target(), callData)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Post(ctx, "/relays/v2/sponsored-call", sponsoredCallRequest{
		ChainID:       c.cfg.ChainID,
		Target:        c.cfg.ForwarderAddress,
		Data:          hexutil.Encode(data),
		SponsorAPIKey: c.cfg.APIKey,
	})
	if err != nil {
		return "", c.serviceError(resp, err, "Gelato failed to relay the transaction")
	}

	var out sponsoredCallResponse
	if err := c.http.ProcessJSONResponse(resp, &out); err != nil {
		return "", fmt.Errorf("failed to decode gelato sponsored call response: %w", err)
	}

	return c.waitForTxHash(ctx, out.TaskID)
}

func (c *Client) waitForTxHash(ctx context.Context, taskID string) (string, error) {
	log := c.logger.With(zap.String("task_id", taskID))

	for checks := 0; ; checks++ {
		if checks >= c.cfg.MaxStatusChecks {
			log.Error("Gelato task status checks limit reached")
			c.metrics.GelatoTimeout()
			return "", &txerrors.RelayerTimeout{Message: "The limit of status checks was reached"}
		}
		if checks > 0 {
			if err := c.sleep(ctx, c.cfg.SleepBetweenChecks); err != nil {
				return "", fmt.Errorf("stopped waiting for gelato task %s: %w", taskID, err)
			}
		}

		resp, err := c.http.Get(ctx, "/tasks/status/"+taskID)
		if err != nil {
			return "", c.serviceError(resp, err, "Gelato failed to get the status of the transaction")
		}

		var status taskStatusResponse
		if err := c.http.ProcessJSONResponse(resp, &status); err != nil {
			return "", fmt.Errorf("failed to decode gelato task status: %w", err)
		}

		task := status.Task
		switch task.TaskState {
		case ExecReverted:
			log.Error("Gelato task reverted", zap.String("message", task.LastCheckMessage))
			c.metrics.GelatoReverted()
			return "", txerrors.NewInvalidTransactionError("Transaction reverted", txerrors.CodeExpectationFailed)
		case Cancelled:
			log.Error("Gelato task cancelled", zap.String("message", task.LastCheckMessage))
			c.metrics.GelatoCancelled()
			if isNoBalance(task.LastCheckMessage) {
				c.metrics.GelatoNoBalance()
			}
			return "", txerrors.NewInvalidTransactionError("Transaction cancelled", txerrors.CodeExpectationFailed)
		case ExecPending, ExecSuccess, WaitingForConfirmation:
			// A hash is returned before the transaction is final.
			if task.TransactionHash != "" {
				c.metrics.GelatoSent()
				log.Info("Gelato task relayed", zap.String("tx_hash", task.TransactionHash), zap.String("state", string(task.TaskState)))
				return task.TransactionHash, nil
			}
		}
	}
}

func isNoBalance(message string) bool {
	for _, m := range noBalanceMessages {
		if strings.Contains(message, m) {
			return true
		}
	}
	return false
}

// serviceError turns a failed request into a RelayerError when the relayer answered,
// or a plain error when it could not be reached.
func (c *Client) serviceError(resp *http.Response, err error, logMessage string) error {
	if resp != nil {
		defer resp.Body.Close()
	}

	var httpErr *httpClient.HTTPError
	if !errors.As(err, &httpErr) {
		return fmt.Errorf("failed to reach gelato: %w", err)
	}

	message := unknownErrorMessage
	if httpErr.IsJSON() {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal([]byte(httpErr.Body), &body) == nil && body.Message != "" {
			message = body.Message
		}
	}

	c.logger.Error(logMessage, zap.Int("status", httpErr.StatusCode), zap.String("message", message))
	c.metrics.GelatoServiceError()
	return &txerrors.RelayerError{StatusCode: httpErr.StatusCode, Message: message}
}

// GetNetworkGasPrice returns the gas price reported by the chain RPC.
func (c *Client) GetNetworkGasPrice(ctx context.Context, chainID uint64) (*big.Int, error) {
	if c.gasPricer == nil {
		return nil, errors.New("gelato has no gas price source configured")
	}
	price, err := c.gasPricer.SuggestGasPrice(ctx)
	if err != nil {
		c.logger.Error("Gelato failed to get the network gas price", zap.Uint64("chain_id", chainID), zap.Error(err))
		return nil, err
	}
	return price, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
