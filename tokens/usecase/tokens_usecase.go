package usecase

import (
	"sync"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
)

type tokensUseCase struct {
	metadataMapMu          sync.RWMutex
	tokenMetadataByAssetID map[domain.AssetID]domain.Token
}

var _ mvc.TokensUsecase = &tokensUseCase{}

// NewTokensUsecase will create a new tokens use case object
func NewTokensUsecase(tokenMetadataByAssetID map[domain.AssetID]domain.Token) mvc.TokensUsecase {
	if tokenMetadataByAssetID == nil {
		tokenMetadataByAssetID = map[domain.AssetID]domain.Token{}
	}

	return &tokensUseCase{
		tokenMetadataByAssetID: tokenMetadataByAssetID,
	}
}

// GetMetadataByAssetID implements mvc.TokensUsecase.
func (t *tokensUseCase) GetMetadataByAssetID(assetID domain.AssetID) (domain.Token, error) {
	t.metadataMapMu.RLock()
	defer t.metadataMapMu.RUnlock()

	token, ok := t.tokenMetadataByAssetID[assetID]
	if !ok {
		return domain.Token{}, domain.AssetMetadataNotFoundError{AssetID: assetID}
	}

	return token, nil
}

// GetFullTokenMetadata implements mvc.TokensUsecase.
func (t *tokensUseCase) GetFullTokenMetadata() map[domain.AssetID]domain.Token {
	t.metadataMapMu.RLock()
	defer t.metadataMapMu.RUnlock()

	result := make(map[domain.AssetID]domain.Token, len(t.tokenMetadataByAssetID))
	for assetID, token := range t.tokenMetadataByAssetID {
		result[assetID] = token
	}

	return result
}

// UpdateMetadata implements mvc.TokensUsecase.
func (t *tokensUseCase) UpdateMetadata(tokens map[domain.AssetID]domain.Token) {
	t.metadataMapMu.Lock()
	defer t.metadataMapMu.Unlock()

	for assetID, token := range tokens {
		t.tokenMetadataByAssetID[assetID] = token
	}
}
