package config

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/metatx/transactions-api/internal/helpers"
)

// SecretReader resolves secrets from Secrets Manager with an env var fallback.
type SecretReader interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is the process configuration, read once at startup.
type Config struct {
	Stage      string
	Port       string
	APIVersion string
	CORSOrigin []string
	CORSMethod []string

	ChainID uint64
	RPCURL  string

	ContractAddressesURL     string
	CollectionsFetchInterval time.Duration
	CollectionsSubgraphURL   string
	CollectionsPreload       bool

	MaxTransactionsPerDay   int64
	MinSaleValueInWei       *big.Int
	EstimateGasCheckEnabled bool

	BiconomyAPIID  string
	BiconomyAPIURL string
	BiconomyAPIKey string

	GelatoAPIURL             string
	GelatoAPIKey             string
	GelatoMaxStatusChecks    int
	GelatoSleepBetweenChecks time.Duration

	FeatureFlagsURL      string
	FeatureFlagsReferer  string
	FeatureFlagsCacheTTL time.Duration

	SQSQueueURL string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load reads the configuration from the environment. Secrets go through the reader so
// deployed stages can keep them in Secrets Manager.
func Load(ctx context.Context, secrets SecretReader) (*Config, error) {
	var err error
	cfg := &Config{
		Stage:                  getEnv("STAGE", helpers.StageLocal),
		Port:                   getEnv("PORT", "8000"),
		APIVersion:             getEnv("API_VERSION", "v1"),
		CORSOrigin:             splitList(getEnv("CORS_ORIGIN", "*")),
		CORSMethod:             splitList(getEnv("CORS_METHOD", "GET,POST,OPTIONS")),
		RPCURL:                 os.Getenv("RPC_URL"),
		ContractAddressesURL:   os.Getenv("CONTRACT_ADDRESSES_URL"),
		CollectionsSubgraphURL: os.Getenv("COLLECTIONS_SUBGRAPH_URL"),
		BiconomyAPIID:          os.Getenv("BICONOMY_API_ID"),
		BiconomyAPIURL:         os.Getenv("BICONOMY_API_URL"),
		GelatoAPIURL:           os.Getenv("GELATO_API_URL"),
		FeatureFlagsURL:        getEnv("FF_URL", "https://feature-flags.decentraland.org"),
		FeatureFlagsReferer:    os.Getenv("FF_REFERER"),
		SQSQueueURL:            os.Getenv("SQS_QUEUE_URL"),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return nil, fmt.Errorf("invalid STAGE %q", cfg.Stage)
	}

	if cfg.ChainID, err = getUint("CHAIN_ID", 137); err != nil {
		return nil, err
	}
	if cfg.CollectionsFetchInterval, err = getMillis("COLLECTIONS_FETCH_INTERVAL_MS", 3600000); err != nil {
		return nil, err
	}
	if cfg.CollectionsPreload, err = getBool("COLLECTIONS_PRELOAD", false); err != nil {
		return nil, err
	}
	if cfg.EstimateGasCheckEnabled, err = getBool("ESTIMATE_GAS_CHECK_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.GelatoSleepBetweenChecks, err = getMillis("GELATO_SLEEP_TIME_BETWEEN_CHECKS", 1000); err != nil {
		return nil, err
	}
	if cfg.FeatureFlagsCacheTTL, err = getMillis("FF_CACHE_TTL_MS", 30000); err != nil {
		return nil, err
	}

	maxChecks, err := getUint("GELATO_MAX_STATUS_CHECKS", 10)
	if err != nil {
		return nil, err
	}
	cfg.GelatoMaxStatusChecks = int(maxChecks)

	maxPerDay, err := getUint("MAX_TRANSACTIONS_PER_DAY", 0)
	if err != nil {
		return nil, err
	}
	cfg.MaxTransactionsPerDay = int64(maxPerDay)

	minSale, ok := new(big.Int).SetString(getEnv("MIN_SALE_VALUE_IN_WEI", "0"), 10)
	if !ok || minSale.Sign() < 0 {
		return nil, fmt.Errorf("invalid MIN_SALE_VALUE_IN_WEI %q", os.Getenv("MIN_SALE_VALUE_IN_WEI"))
	}
	cfg.MinSaleValueInWei = minSale

	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	burst, err := getUint("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst = int(burst)

	if secrets != nil {
		// Only one provider needs to be usable; each is validated when it is constructed.
		cfg.BiconomyAPIKey, _ = secrets.GetSecretString(ctx, "BICONOMY_API_KEY_ARN", "BICONOMY_API_KEY")
		cfg.GelatoAPIKey, _ = secrets.GetSecretString(ctx, "GELATO_API_KEY_ARN", "GELATO_API_KEY")
	}

	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	var missing []string
	if c.ContractAddressesURL == "" {
		missing = append(missing, "CONTRACT_ADDRESSES_URL")
	}
	if c.CollectionsSubgraphURL == "" {
		missing = append(missing, "COLLECTIONS_SUBGRAPH_URL")
	}
	if c.MaxTransactionsPerDay <= 0 {
		missing = append(missing, "MAX_TRANSACTIONS_PER_DAY")
	}
	if c.BiconomyAPIURL == "" && c.GelatoAPIURL == "" {
		missing = append(missing, "BICONOMY_API_URL or GELATO_API_URL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getUint(key string, defaultValue uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getMillis(key string, defaultValue uint64) (time.Duration, error) {
	v, err := getUint(key, defaultValue)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
