package usecase

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/log"
)

// assetList is the JSON structure of the registry assets file.
type assetList struct {
	ChainName string `json:"chain_name"`
	Assets    []struct {
		AssetID  domain.AssetID `json:"asset_id"`
		Name     string         `json:"name"`
		Symbol   string         `json:"symbol"`
		Decimals int            `json:"decimals"`
		Unlisted bool           `json:"unlisted"`
	} `json:"assets"`
}

// GetTokensFromRegistryFunc is a GetTokensFromRegistry function signature.
type GetTokensFromRegistryFunc func(registryAssetsFileURL string) (map[domain.AssetID]domain.Token, string, error)

// GetTokensFromRegistry fetches the assets file from the registry.
// It returns a map of tokens by asset ID together with the content hash.
func GetTokensFromRegistry(registryAssetsFileURL string) (map[domain.AssetID]domain.Token, string, error) {
	response, err := http.Get(registryAssetsFileURL)
	if err != nil {
		return nil, "", err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, "", err
	}

	var list assetList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, "", err
	}

	tokensByAssetID := make(map[domain.AssetID]domain.Token, len(list.Assets))
	for _, asset := range list.Assets {
		tokensByAssetID[asset.AssetID] = domain.Token{
			Symbol:     asset.Symbol,
			Precision:  asset.Decimals,
			IsUnlisted: asset.Unlisted,
		}
	}

	return tokensByAssetID, fmt.Sprintf("%x", md5.Sum(data)), nil
}

// LoadTokensFunc applies a fetched token map to the registry.
type LoadTokensFunc func(tokens map[domain.AssetID]domain.Token)

// TokenRegistryLoader is loader of tokens from the registry passing results
// to the loadTokens function.
type TokenRegistryLoader interface {
	// FetchAndUpdateTokens fetches tokens from the registry and loads them
	// by calling loadTokens if there are changes.
	FetchAndUpdateTokens(loadTokens LoadTokensFunc) error
}

// RegistryHTTPFetcher is an implementation of TokenRegistryLoader that
// fetches tokens from the HTTP registry.
type RegistryHTTPFetcher struct {
	registryURL           string
	getTokensFromRegistry GetTokensFromRegistryFunc
	lastFetchHash         string
}

var _ TokenRegistryLoader = &RegistryHTTPFetcher{}

// NewRegistryHTTPFetcher creates a new instance of RegistryHTTPFetcher.
func NewRegistryHTTPFetcher(registryURL string, getTokensFromRegistry GetTokensFromRegistryFunc) *RegistryHTTPFetcher {
	return &RegistryHTTPFetcher{
		getTokensFromRegistry: getTokensFromRegistry,
		registryURL:           registryURL,
	}
}

// FetchAndUpdateTokens fetches tokens from the registry and loads them by
// calling the loadTokens function. In case there were no changes since the
// last fetch, it does not call loadTokens.
func (f *RegistryHTTPFetcher) FetchAndUpdateTokens(loadTokens LoadTokensFunc) error {
	tokens, hash, err := f.getTokensFromRegistry(f.registryURL)
	if err != nil {
		return err
	}

	if f.lastFetchHash != hash {
		loadTokens(tokens)
		f.lastFetchHash = hash
	}

	return nil
}

// RunPeriodicUpdate re-fetches the registry at the given interval until
// stopCh is closed, applying changed payloads through loadTokens. Fetch
// failures are logged and retried on the next tick.
func (f *RegistryHTTPFetcher) RunPeriodicUpdate(stopCh <-chan struct{}, interval time.Duration, loadTokens LoadTokensFunc, logger log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if err := f.FetchAndUpdateTokens(loadTokens); err != nil {
				logger.Error("failed to update token registry", zap.Error(err))
			}
		}
	}
}
