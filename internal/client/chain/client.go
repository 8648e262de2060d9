package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/metatx/transactions-api/internal/logger"
)

// Client talks to a JSON-RPC node. The connection is opened on first use.
type Client struct {
	rpcURL string
	logger *zap.Logger

	mu     sync.Mutex
	client *ethclient.Client
}

func NewClient(rpcURL string, log *zap.Logger) *Client {
	return &Client{rpcURL: rpcURL, logger: logger.OrGlobal(log)}
}

func (c *Client) conn(ctx context.Context) (*ethclient.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	if c.rpcURL == "" {
		return nil, fmt.Errorf("RPC URL not configured")
	}

	client, err := ethclient.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.client = client
	return client, nil
}

// SuggestGasPrice returns eth_gasPrice.
func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, err := c.conn(ctx)
	if err != nil {
		return nil, err
	}

	gasPrice, err := client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	return gasPrice, nil
}

// EstimateGas runs eth_estimateGas for a call from one address to another.
func (c *Client) EstimateGas(ctx context.Context, from, to string, data []byte) (uint64, error) {
	client, err := c.conn(ctx)
	if err != nil {
		return 0, err
	}

	target := common.HexToAddress(to)
	gas, err := client.EstimateGas(ctx, ethereum.CallMsg{
		From: common.HexToAddress(from),
		To:   &target,
		Data: data,
	})
	if err != nil {
		c.logger.Debug("Gas estimation failed", zap.String("to", to), zap.Error(err))
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return gas, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		c.client.Close()
		c.client = nil
	}
}
