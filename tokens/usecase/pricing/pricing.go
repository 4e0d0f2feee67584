package pricing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/cache"
	"github.com/mirador-labs/swapd/domain/workerpool"
	"github.com/mirador-labs/swapd/log"
	"github.com/mirador-labs/swapd/util"
)

const priceEndpointFmt = "/v1/prices/%s?currency=%s"

var pricingErrorsCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: domain.SwapdPricingErrorsMetricName,
		Help: "Total number of pricing errors",
	},
	[]string{"asset"},
)

func init() {
	prometheus.MustRegister(pricingErrorsCounter)
}

var _ domain.PriceSource = &priceSource{}

// priceSource resolves USD prices against the price API, caching results
// for the configured TTL.
type priceSource struct {
	client *http.Client
	logger log.Logger

	url           string
	quoteCurrency string
	cacheExpiry   time.Duration
	workerCount   int

	cache *cache.Cache
}

type priceResponse struct {
	Price string `json:"price"`
}

// assetPrice pairs an asset with its fetched price so pool results can be
// attributed after fan-out.
type assetPrice struct {
	assetID domain.AssetID
	price   osmomath.BigDec
}

// NewPriceSource creates a price source against the configured price API.
func NewPriceSource(config *domain.PricingConfig, logger log.Logger) domain.PriceSource {
	workerCount := config.WorkerCount
	if workerCount <= 0 {
		workerCount = 1
	}

	return &priceSource{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,

		url:           config.URL,
		quoteCurrency: config.QuoteCurrency,
		cacheExpiry:   time.Duration(config.CacheExpiryMs) * time.Millisecond,
		workerCount:   workerCount,

		cache: cache.New(),
	}
}

// GetPrice implements domain.PriceSource.
func (p *priceSource) GetPrice(ctx context.Context, assetID domain.AssetID) (osmomath.BigDec, error) {
	if cached, ok := p.cache.Get(string(assetID)); ok {
		price, ok := cached.(osmomath.BigDec)
		if ok {
			return price, nil
		}
	}

	endpoint := fmt.Sprintf(priceEndpointFmt, assetID, p.quoteCurrency)

	response, err := util.Get[priceResponse](ctx, p.client, p.url, endpoint)
	if err != nil {
		pricingErrorsCounter.WithLabelValues(string(assetID)).Inc()
		return osmomath.BigDec{}, err
	}

	price, err := osmomath.NewBigDecFromStr(response.Price)
	if err != nil {
		pricingErrorsCounter.WithLabelValues(string(assetID)).Inc()
		return osmomath.BigDec{}, fmt.Errorf("malformed price (%s) for asset (%s): %w", response.Price, assetID, err)
	}

	p.cache.Set(string(assetID), price, p.cacheExpiry)

	return price, nil
}

// GetPrices implements domain.PriceSource. Fetches are fanned out over the
// worker pool; assets that fail to price are omitted from the result.
func (p *priceSource) GetPrices(ctx context.Context, assetIDs []domain.AssetID) map[domain.AssetID]osmomath.BigDec {
	pool := workerpool.New[assetPrice](p.workerCount)
	pool.Run()

	go func() {
		defer close(pool.JobQueue)
		for _, assetID := range assetIDs {
			assetID := assetID
			pool.JobQueue <- workerpool.Job[assetPrice]{
				Task: func() (assetPrice, error) {
					price, err := p.GetPrice(ctx, assetID)
					return assetPrice{assetID: assetID, price: price}, err
				},
			}
		}
	}()

	prices := make(map[domain.AssetID]osmomath.BigDec, len(assetIDs))
	for result := range pool.ResultQueue {
		if result.Err != nil {
			p.logger.Warn("failed to fetch price",
				zap.String("asset_id", string(result.Result.assetID)),
				zap.Error(result.Err),
			)
			continue
		}
		prices[result.Result.assetID] = result.Result.price
	}

	return prices
}
