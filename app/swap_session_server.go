package main

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	chainclient "github.com/mirador-labs/swapd/chain/client"
	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
	"github.com/mirador-labs/swapd/log"
	"github.com/mirador-labs/swapd/middleware"
	"github.com/mirador-labs/swapd/preferences"
	routerclient "github.com/mirador-labs/swapd/router/client"
	swaphttpdelivery "github.com/mirador-labs/swapd/swap/delivery/http"
	swapusecase "github.com/mirador-labs/swapd/swap/usecase"
	tokensusecase "github.com/mirador-labs/swapd/tokens/usecase"
	"github.com/mirador-labs/swapd/tokens/usecase/pricing"
)

// SwapSessionServer defines an interface for the swap session server.
// It wires the session engine to its external services and exposes the
// session over HTTP.
type SwapSessionServer interface {
	GetSwapUsecase() mvc.SwapUsecase
	GetTokensUsecase() mvc.TokensUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type swapSessionServer struct {
	swapUsecase   mvc.SwapUsecase
	tokensUsecase mvc.TokensUsecase
	e             *echo.Echo
	serverAddress string
	logger        log.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
}

// GetSwapUsecase implements SwapSessionServer.
func (s *swapSessionServer) GetSwapUsecase() mvc.SwapUsecase {
	return s.swapUsecase
}

// GetTokensUsecase implements SwapSessionServer.
func (s *swapSessionServer) GetTokensUsecase() mvc.TokensUsecase {
	return s.tokensUsecase
}

// GetLogger implements SwapSessionServer.
func (s *swapSessionServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements SwapSessionServer.
func (s *swapSessionServer) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
	s.swapUsecase.Shutdown()
	return s.e.Shutdown(ctx)
}

// Start implements SwapSessionServer.
func (s *swapSessionServer) Start(context.Context) error {
	s.logger.Info("Starting swap session server", zap.String("address", s.serverAddress))
	return s.e.Start(s.serverAddress)
}

// NewSwapSessionServer creates a new swap session server.
func NewSwapSessionServer(config *domain.Config, logger log.Logger) (SwapSessionServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware("swapd"))

	// Compute token metadata from the registry assets file.
	tokenMetadataByAssetID, _, err := tokensusecase.GetTokensFromRegistry(config.RegistryAssetsFileURL)
	if err != nil {
		return nil, err
	}
	tokensUsecase := tokensusecase.NewTokensUsecase(tokenMetadataByAssetID)

	// Keep the registry fresh so newly listed assets become tradable
	// without a restart.
	stopCh := make(chan struct{})
	if config.RegistryRefreshMs > 0 {
		registryFetcher := tokensusecase.NewRegistryHTTPFetcher(config.RegistryAssetsFileURL, tokensusecase.GetTokensFromRegistry)
		refreshInterval := time.Duration(config.RegistryRefreshMs) * time.Millisecond
		go registryFetcher.RunPeriodicUpdate(stopCh, refreshInterval, tokensUsecase.UpdateMetadata, logger)
	}

	// External services
	priceSource := pricing.NewPriceSource(config.Pricing, logger)
	routeOracle := routerclient.NewRoutingClient(config.Routing, tokensUsecase)
	chainClient := chainclient.NewChainClient(config.Chain, tokensUsecase)
	preferenceStore := preferences.NewFileStore(config.Swap.PreferenceFilePath)

	// Session engine
	swapUsecase := swapusecase.NewSwapUsecase(config, routeOracle, tokensUsecase, priceSource, chainClient, preferenceStore, logger)

	// HTTP handlers
	swaphttpdelivery.NewSwapHandler(e, swapUsecase, logger)
	e.GET("/healthcheck", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &swapSessionServer{
		swapUsecase:   swapUsecase,
		tokensUsecase: tokensUsecase,
		logger:        logger,
		e:             e,
		serverAddress: config.ServerAddress,
		stopCh:        stopCh,
	}, nil
}
