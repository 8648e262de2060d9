package constants

// Common string constants used throughout the codebase
const (
	// Deployed environments
	ProdEnvironment = "prod"
	DevEnvironment  = "dev"

	// Service name attached to structured logs
	ServiceName = "transactions-api"

	// Relay providers
	BiconomyProvider = "biconomy"
	GelatoProvider   = "gelato"

	// Feature flag application and flags
	DappsApplication          = "dapps"
	GelatoRelayerFeature      = "gelato-relayer"
	MaxGasPriceAllowedFeature = "max-gas-price-allowed"
)
