package usecase_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/log"
	tokensusecase "github.com/mirador-labs/swapd/tokens/usecase"
)

const assetListBody = `{
	"chain_name": "mirador",
	"assets": [
		{"asset_id": "0xf8f8b628", "name": "Ether", "symbol": "ETH", "decimals": 9},
		{"asset_id": "0x286c479d", "name": "USD Coin", "symbol": "USDC", "decimals": 6, "unlisted": true}
	]
}`

func TestGetTokensFromRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(assetListBody))
	}))
	defer server.Close()

	tokens, hash, err := tokensusecase.GetTokensFromRegistry(server.URL)
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.Len(t, tokens, 2)

	eth := tokens[domain.AssetID("0xf8f8b628")]
	require.Equal(t, "ETH", eth.Symbol)
	require.Equal(t, 9, eth.Precision)
	require.False(t, eth.IsUnlisted)

	usdc := tokens[domain.AssetID("0x286c479d")]
	require.True(t, usdc.IsUnlisted)
}

func TestRegistryHTTPFetcher_RunPeriodicUpdate(t *testing.T) {
	var fetches atomic.Int64
	getTokens := func(registryAssetsFileURL string) (map[domain.AssetID]domain.Token, string, error) {
		fetch := fetches.Add(1)
		// A changing hash makes every fetch load.
		return map[domain.AssetID]domain.Token{}, fmt.Sprintf("hash-%d", fetch), nil
	}

	fetcher := tokensusecase.NewRegistryHTTPFetcher("http://registry.test", getTokens)

	var loads atomic.Int64
	stopCh := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		fetcher.RunPeriodicUpdate(stopCh, 2*time.Millisecond, func(tokens map[domain.AssetID]domain.Token) {
			loads.Add(1)
		}, &log.NoOpLogger{})
	}()

	require.Eventually(t, func() bool {
		return loads.Load() >= 2
	}, time.Second, time.Millisecond)

	close(stopCh)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("periodic update did not stop")
	}
}

func TestRegistryHTTPFetcher_SkipsUnchangedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(assetListBody))
	}))
	defer server.Close()

	fetcher := tokensusecase.NewRegistryHTTPFetcher(server.URL, tokensusecase.GetTokensFromRegistry)

	loadCalls := 0
	load := func(tokens map[domain.AssetID]domain.Token) {
		loadCalls++
	}

	require.NoError(t, fetcher.FetchAndUpdateTokens(load))
	require.NoError(t, fetcher.FetchAndUpdateTokens(load))

	// The second fetch sees the same content hash and does not reload.
	require.Equal(t, 1, loadCalls)
}
