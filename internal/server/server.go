package server

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	awsclient "github.com/metatx/transactions-api/internal/client/aws"
	"github.com/metatx/transactions-api/internal/client/biconomy"
	"github.com/metatx/transactions-api/internal/client/chain"
	"github.com/metatx/transactions-api/internal/client/features"
	"github.com/metatx/transactions-api/internal/client/gelato"
	"github.com/metatx/transactions-api/internal/client/subgraph"
	"github.com/metatx/transactions-api/internal/client/whitelist"
	"github.com/metatx/transactions-api/internal/config"
	"github.com/metatx/transactions-api/internal/contracts"
	"github.com/metatx/transactions-api/internal/db"
	"github.com/metatx/transactions-api/internal/handlers"
	"github.com/metatx/transactions-api/internal/helpers"
	"github.com/metatx/transactions-api/internal/interfaces"
	"github.com/metatx/transactions-api/internal/logger"
	"github.com/metatx/transactions-api/internal/metrics"
	"github.com/metatx/transactions-api/internal/middleware"
	"github.com/metatx/transactions-api/internal/oracle"
	"github.com/metatx/transactions-api/internal/relay"
	"github.com/metatx/transactions-api/internal/services"
	"github.com/metatx/transactions-api/internal/validation"
)

const databaseWait = 30 * time.Second

// Handlers is everything the router needs. InitializeHandlers fills the package level
// instance; tests build their own.
type Handlers struct {
	Transactions *handlers.TransactionHandler
	Contracts    *handlers.ContractHandler
	Health       *handlers.HealthHandler
	Metrics      *metrics.Registry
	RateLimiter  *middleware.RateLimiter

	APIVersion string
	CORSOrigin []string
	CORSMethod []string
}

var (
	cfg      *config.Config
	current  Handlers
	connPool *pgxpool.Pool
	rpc      *chain.Client
)

// InitializeHandlers reads the configuration and builds every dependency of the API.
// Any failure is fatal.
func InitializeHandlers() {
	ctx := context.Background()
	log := logger.OrGlobal(nil)

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		log.Warn("AWS Secrets Manager unavailable, secrets are read from the environment", zap.Error(err))
	}

	cfg, err = config.Load(ctx, secretsClient)
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	dsn, err := databaseURL(ctx, cfg.Stage, secretsClient)
	if err != nil {
		logger.Fatal("Unable to resolve database connection string", zap.Error(err))
	}
	connPool, err = db.Connect(ctx, dsn, databaseWait)
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	if err := db.Migrate(ctx, connPool); err != nil {
		logger.Fatal("Unable to apply database migrations", zap.Error(err))
	}
	queries := db.New(connPool)

	registry := metrics.NewRegistry()

	contractRegistry, err := contracts.NewRegistry(cfg.ChainID)
	if err != nil {
		logger.Fatal("Unable to build contract registry", zap.Error(err))
	}

	featureFlags := features.NewClient(features.Config{
		BaseURL:  cfg.FeatureFlagsURL,
		Referer:  cfg.FeatureFlagsReferer,
		CacheTTL: cfg.FeatureFlagsCacheTTL,
		Metrics:  registry,
	}, log)

	addressOracle, err := oracle.New(
		oracle.Config{ChainID: cfg.ChainID, RefreshInterval: cfg.CollectionsFetchInterval},
		whitelist.NewClient(cfg.ContractAddressesURL, registry),
		subgraph.NewClient(cfg.CollectionsSubgraphURL, registry),
		log,
	)
	if err != nil {
		logger.Fatal("Unable to create address oracle", zap.Error(err))
	}
	if cfg.CollectionsPreload {
		go func() {
			count, err := addressOracle.PreloadCollections(context.Background())
			if err != nil {
				log.Error("Failed to preload collections", zap.Error(err))
				return
			}
			log.Info("Preloaded collections", zap.Int("count", count))
		}()
	}

	var chainClient interfaces.ChainClient
	if cfg.RPCURL != "" {
		rpc = chain.NewClient(cfg.RPCURL, log)
		chainClient = rpc
	}
	if cfg.EstimateGasCheckEnabled && chainClient == nil {
		logger.Fatal("RPC_URL is required when ESTIMATE_GAS_CHECK_ENABLED is set")
	}

	dispatcher, err := relay.NewDispatcher(cfg.ChainID,
		biconomyProvider(cfg, registry, log),
		gelatoProvider(cfg, contractRegistry, registry, log),
		featureFlags, log)
	if err != nil {
		logger.Fatal("Unable to create relay dispatcher", zap.Error(err))
	}

	pipeline := validation.NewPipeline(validation.Config{
		MaxTransactionsPerDay:   cfg.MaxTransactionsPerDay,
		MinSaleValueInWei:       cfg.MinSaleValueInWei,
		EstimateGasCheckEnabled: cfg.EstimateGasCheckEnabled,
	}, validation.Dependencies{
		Registry: contractRegistry,
		Oracle:   addressOracle,
		Features: featureFlags,
		Relay:    dispatcher,
		Ledger:   queries,
		Chain:    chainClient,
		Metrics:  registry,
		Logger:   log,
	})

	var publisher interfaces.EventPublisher
	if cfg.SQSQueueURL != "" {
		sqsPublisher, err := awsclient.NewSQSPublisher(ctx, cfg.SQSQueueURL)
		if err != nil {
			logger.Fatal("Unable to create SQS publisher", zap.Error(err))
		}
		publisher = sqsPublisher
	}

	transactionService := services.NewTransactionService(pipeline, dispatcher, queries, publisher, cfg.ChainID)

	current = Handlers{
		Transactions: handlers.NewTransactionHandler(transactionService),
		Contracts:    handlers.NewContractHandler(addressOracle),
		Health:       handlers.NewHealthHandler(connPool),
		Metrics:      registry,
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		APIVersion:   cfg.APIVersion,
		CORSOrigin:   cfg.CORSOrigin,
		CORSMethod:   cfg.CORSMethod,
	}

	log.Info("Handlers initialized",
		zap.String("stage", cfg.Stage),
		zap.Uint64("chainId", cfg.ChainID),
		zap.Bool("events", publisher != nil),
	)
}

// biconomyProvider returns nil when Biconomy is not configured so the dispatcher never
// sees a typed nil.
func biconomyProvider(cfg *config.Config, registry *metrics.Registry, log *zap.Logger) interfaces.RelayProvider {
	if cfg.BiconomyAPIURL == "" {
		return nil
	}
	client, err := biconomy.NewClient(biconomy.Config{
		APIURL: cfg.BiconomyAPIURL,
		APIID:  cfg.BiconomyAPIID,
		APIKey: cfg.BiconomyAPIKey,
	}, registry, log)
	if err != nil {
		log.Warn("Biconomy relayer disabled", zap.Error(err))
		return nil
	}
	return client
}

func gelatoProvider(cfg *config.Config, contractRegistry *contracts.Registry, registry *metrics.Registry, log *zap.Logger) interfaces.RelayProvider {
	if cfg.GelatoAPIURL == "" {
		return nil
	}
	if rpc == nil {
		log.Warn("Gelato relayer disabled, RPC_URL is required for gas prices")
		return nil
	}
	client, err := gelato.NewClient(gelato.Config{
		APIURL:             cfg.GelatoAPIURL,
		APIKey:             cfg.GelatoAPIKey,
		ChainID:            cfg.ChainID,
		MaxStatusChecks:    cfg.GelatoMaxStatusChecks,
		SleepBetweenChecks: cfg.GelatoSleepBetweenChecks,
		ForwarderAddress:   contractRegistry.Address(contracts.MetaTxForwarder),
	}, rpc, registry, log)
	if err != nil {
		log.Warn("Gelato relayer disabled", zap.Error(err))
		return nil
	}
	return client
}

// SecretJSONReader reads JSON secrets, satisfied by *awsclient.SecretsManagerClient.
type SecretJSONReader interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error
}

type rdsSecret struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// databaseURL builds the DSN from the RDS secret in deployed stages and reads
// DATABASE_URL locally.
func databaseURL(ctx context.Context, stage string, secrets SecretJSONReader) (string, error) {
	if stage != helpers.StageProd && stage != helpers.StageDev {
		if secrets == nil {
			if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
				return dsn, nil
			}
			return "", fmt.Errorf("DATABASE_URL is required in stage %s", stage)
		}
		return secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	}

	dbHost := os.Getenv("DB_HOST")
	dbName := os.Getenv("DB_NAME")
	if dbHost == "" || dbName == "" || os.Getenv("RDS_SECRET_ARN") == "" {
		return "", fmt.Errorf("DB_HOST, DB_NAME and RDS_SECRET_ARN are required in stage %s", stage)
	}
	sslMode := os.Getenv("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "require"
	}
	if secrets == nil {
		return "", fmt.Errorf("secrets manager is required to read RDS_SECRET_ARN")
	}

	var secret rdsSecret
	if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secret); err != nil {
		return "", err
	}
	if secret.Username == "" || secret.Password == "" {
		return "", fmt.Errorf("username or password missing from RDS secret")
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(secret.Username), url.QueryEscape(secret.Password),
		dbHost, dbName, sslMode), nil
}

// InitializeRoutes registers the handlers built by InitializeHandlers.
func InitializeRoutes(router *gin.Engine) {
	RegisterRoutes(router, current)
}

// RegisterRoutes mounts the API on router.
func RegisterRoutes(router *gin.Engine, h Handlers) {
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(configureCORS(h.CORSOrigin, h.CORSMethod))
	if h.RateLimiter != nil {
		router.Use(h.RateLimiter.Middleware())
	}

	router.GET("/health", h.Health.Health)
	router.GET("/metrics", handlers.Metrics(h.Metrics))

	apiVersion := h.APIVersion
	if apiVersion == "" {
		apiVersion = "v1"
	}
	v := router.Group("/" + apiVersion)
	{
		v.POST("/transactions", h.Transactions.SendTransaction)
		v.GET("/transactions/:user_address", h.Transactions.GetTransactions)
		v.GET("/contracts/:address", h.Contracts.GetContract)
	}
}

// Address is the listen address for the local server.
func Address() string {
	if cfg == nil || cfg.Port == "" {
		return ":8000"
	}
	return ":" + cfg.Port
}

// Shutdown releases the resources opened by InitializeHandlers.
func Shutdown() {
	if current.RateLimiter != nil {
		current.RateLimiter.Stop()
	}
	if rpc != nil {
		rpc.Close()
	}
	if connPool != nil {
		connPool.Close()
	}
}

func configureCORS(origins, methods []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}
	if len(methods) > 0 {
		corsConfig.AllowMethods = methods
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.CorrelationIDHeader}
	corsConfig.MaxAge = 12 * time.Hour
	return cors.New(corsConfig)
}
