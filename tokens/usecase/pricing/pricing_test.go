package pricing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/log"
	"github.com/mirador-labs/swapd/tokens/usecase/pricing"
)

const (
	ethAsset  = domain.AssetID("0xf8f8b628")
	usdcAsset = domain.AssetID("0x286c479d")
)

func newPriceSource(serverURL string, cacheExpiryMs int) domain.PriceSource {
	return pricing.NewPriceSource(&domain.PricingConfig{
		URL:           serverURL,
		QuoteCurrency: "usd",
		CacheExpiryMs: cacheExpiryMs,
		WorkerCount:   2,
	}, &log.NoOpLogger{})
}

func TestGetPrice(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		require.Equal(t, "/v1/prices/"+string(ethAsset), r.URL.Path)
		require.Equal(t, "usd", r.URL.Query().Get("currency"))
		_, _ = w.Write([]byte(`{"price": "2400.5"}`))
	}))
	defer server.Close()

	source := newPriceSource(server.URL, 60_000)

	price, err := source.GetPrice(context.Background(), ethAsset)
	require.NoError(t, err)
	require.True(t, price.Equal(osmomath.MustNewBigDecFromStr("2400.5")))

	// The second read is served from the cache.
	_, err = source.GetPrice(context.Background(), ethAsset)
	require.NoError(t, err)
	require.Equal(t, int64(1), requests.Load())
}

func TestGetPrices_OmitsFailedAssets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/prices/"+string(ethAsset) {
			_, _ = w.Write([]byte(`{"price": "2400"}`))
			return
		}
		http.Error(w, `{"message": "unknown asset"}`, http.StatusNotFound)
	}))
	defer server.Close()

	source := newPriceSource(server.URL, 0)

	prices := source.GetPrices(context.Background(), []domain.AssetID{ethAsset, usdcAsset})

	require.Len(t, prices, 1)
	require.Contains(t, prices, ethAsset)
	require.True(t, prices[ethAsset].Equal(osmomath.MustNewBigDecFromStr("2400")))
}

func TestGetPrice_MalformedPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"price": "not-a-number"}`))
	}))
	defer server.Close()

	source := newPriceSource(server.URL, 0)

	_, err := source.GetPrice(context.Background(), ethAsset)
	require.Error(t, err)
}
