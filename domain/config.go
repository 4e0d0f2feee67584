package domain

// Config defines the config for the swap session daemon.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// CORS encapsulates the CORS configuration.
	CORS *CORSConfig `mapstructure:"cors"`

	// OTEL encapsulates the error reporting and tracing configuration.
	OTEL *OTELConfig `mapstructure:"otel"`

	// Routing encapsulates the route oracle backend configuration.
	Routing *RoutingConfig `mapstructure:"routing"`

	// Chain encapsulates the node configuration.
	Chain *ChainConfig `mapstructure:"chain"`

	// Registry assets file URL.
	RegistryAssetsFileURL string `mapstructure:"registry-assets-url"`

	// Registry re-fetch interval in milliseconds. Zero disables the
	// periodic refresh.
	RegistryRefreshMs int `mapstructure:"registry-refresh-ms"`

	// Pricing encapsulates the price source configuration.
	Pricing *PricingConfig `mapstructure:"pricing"`

	// Swap encapsulates the session engine configuration.
	Swap *SwapConfig `mapstructure:"swap"`
}

// CORSConfig defines the CORS headers applied to every response.
type CORSConfig struct {
	AllowedOrigin  string `mapstructure:"allowed-origin"`
	AllowedHeaders string `mapstructure:"allowed-headers"`
	AllowedMethods string `mapstructure:"allowed-methods"`
}

// OTELConfig defines the error reporting and tracing configuration.
type OTELConfig struct {
	DSN                string  `mapstructure:"dsn"`
	SampleRate         float64 `mapstructure:"sample-rate"`
	EnableTracing      bool    `mapstructure:"enable-tracing"`
	TracesSampleRate   float64 `mapstructure:"traces-sample-rate"`
	ProfilesSampleRate float64 `mapstructure:"profiles-sample-rate"`
	Environment        string  `mapstructure:"environment"`
}

// RoutingConfig defines the route oracle backend configuration.
type RoutingConfig struct {
	// BackendURL is the base URL of the routing backend.
	BackendURL string `mapstructure:"backend-url"`
	// TimeoutSeconds bounds a single quote request.
	TimeoutSeconds int `mapstructure:"timeout-seconds"`
}

// ChainConfig defines the node connection configuration.
type ChainConfig struct {
	// NodeURL is the base URL of the node gateway.
	NodeURL string `mapstructure:"node-url"`
	// ChainID is the expected network identifier. A node reporting a
	// different identifier puts the session into the wrong-network state.
	ChainID string `mapstructure:"chain-id"`
	// WalletAddress is the session wallet's address.
	WalletAddress string `mapstructure:"wallet-address"`
	// TimeoutSeconds bounds a single node request.
	TimeoutSeconds int `mapstructure:"timeout-seconds"`
}

// PricingConfig defines the price source configuration.
type PricingConfig struct {
	// URL is the price API endpoint.
	URL string `mapstructure:"url"`
	// QuoteCurrency is the fiat currency prices are quoted in.
	QuoteCurrency string `mapstructure:"quote-currency"`
	// CacheExpiryMs is the TTL of cached prices in milliseconds.
	CacheExpiryMs int `mapstructure:"cache-expiry-ms"`
	// WorkerCount is the number of workers fanning out price fetches.
	WorkerCount int `mapstructure:"worker-count"`
}

// SwapConfig defines the session engine configuration.
type SwapConfig struct {
	// DebounceMs is the keystroke commit coalescing window in milliseconds.
	DebounceMs int `mapstructure:"debounce-ms"`
	// QuoteRefetchMs is the background quote re-poll interval in
	// milliseconds. Zero disables re-polling.
	QuoteRefetchMs int `mapstructure:"quote-refetch-ms"`
	// DefaultSlippageBps is the initial slippage tolerance in basis points.
	DefaultSlippageBps uint64 `mapstructure:"default-slippage-bps"`
	// FeeAssetID is the asset that pays network fees.
	FeeAssetID AssetID `mapstructure:"fee-asset-id"`
	// FeeReserve is the minimum fee-asset amount, in canonical units, kept
	// out of a max-sell so the wallet cannot zero out its gas funds.
	FeeReserve string `mapstructure:"fee-reserve"`
	// DefaultSellAssetID seeds the sell side when no preference is stored.
	DefaultSellAssetID AssetID `mapstructure:"default-sell-asset-id"`
	// DefaultBuyAssetID seeds the buy side when no preference is stored.
	DefaultBuyAssetID AssetID `mapstructure:"default-buy-asset-id"`
	// PreferenceFilePath is where the last-used asset pair is persisted.
	PreferenceFilePath string `mapstructure:"preference-file-path"`
	// BridgeURL is surfaced when the fee-asset balance cannot cover the
	// reserve so the user can bridge more funds.
	BridgeURL string `mapstructure:"bridge-url"`
}
