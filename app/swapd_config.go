package main

import (
	"github.com/mirador-labs/swapd/domain"
)

// DefaultConfig defines the default config for the swap session server.
var DefaultConfig = domain.Config{
	ServerAddress: ":9192",

	LoggerFilename:     "swapd.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	CORS: &domain.CORSConfig{
		AllowedOrigin:  "*",
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time",
		AllowedMethods: "GET, POST, HEAD, OPTIONS",
	},

	OTEL: &domain.OTELConfig{
		Environment: "production",
	},

	Routing: &domain.RoutingConfig{
		BackendURL:     "http://localhost:9193",
		TimeoutSeconds: 10,
	},

	Chain: &domain.ChainConfig{
		NodeURL:        "http://localhost:4000",
		ChainID:        "9889",
		TimeoutSeconds: 10,
	},

	RegistryAssetsFileURL: "https://registry.mirador.zone/mainnet/assets.json",
	RegistryRefreshMs:     900000, // 15 minutes.

	Pricing: &domain.PricingConfig{
		URL:           "http://localhost:9194",
		QuoteCurrency: "usd",
		CacheExpiryMs: 2000, // 2 seconds.
		WorkerCount:   5,
	},

	Swap: &domain.SwapConfig{
		DebounceMs:         500,
		QuoteRefetchMs:     15000, // 15 seconds.
		DefaultSlippageBps: 100,   // 1%.
		FeeReserve:         "0.001",
		PreferenceFilePath: "swap_preference.json",
		BridgeURL:          "https://bridge.mirador.zone",
	},
}
