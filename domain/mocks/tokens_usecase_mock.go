package mocks

import (
	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
)

var _ mvc.TokensUsecase = &TokensUsecaseMock{}

// TokensUsecaseMock is a mock implementation of the TokensUsecase interface.
type TokensUsecaseMock struct {
	GetMetadataByAssetIDFunc func(assetID domain.AssetID) (domain.Token, error)
	GetFullTokenMetadataFunc func() map[domain.AssetID]domain.Token
	UpdateMetadataFunc       func(tokens map[domain.AssetID]domain.Token)
}

func (m *TokensUsecaseMock) GetMetadataByAssetID(assetID domain.AssetID) (domain.Token, error) {
	if m.GetMetadataByAssetIDFunc != nil {
		return m.GetMetadataByAssetIDFunc(assetID)
	}
	return domain.Token{}, domain.AssetMetadataNotFoundError{AssetID: assetID}
}

func (m *TokensUsecaseMock) GetFullTokenMetadata() map[domain.AssetID]domain.Token {
	if m.GetFullTokenMetadataFunc != nil {
		return m.GetFullTokenMetadataFunc()
	}
	return map[domain.AssetID]domain.Token{}
}

func (m *TokensUsecaseMock) UpdateMetadata(tokens map[domain.AssetID]domain.Token) {
	if m.UpdateMetadataFunc != nil {
		m.UpdateMetadataFunc(tokens)
	}
}
