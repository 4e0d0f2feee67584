package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
)

var _ domain.PriceSource = &PriceSourceMock{}

// PriceSourceMock is a mock implementation of the PriceSource interface.
type PriceSourceMock struct {
	GetPriceFunc  func(ctx context.Context, assetID domain.AssetID) (osmomath.BigDec, error)
	GetPricesFunc func(ctx context.Context, assetIDs []domain.AssetID) map[domain.AssetID]osmomath.BigDec
}

func (m *PriceSourceMock) GetPrice(ctx context.Context, assetID domain.AssetID) (osmomath.BigDec, error) {
	if m.GetPriceFunc != nil {
		return m.GetPriceFunc(ctx, assetID)
	}
	return osmomath.BigDec{}, domain.PriceNotFoundError{AssetID: assetID}
}

func (m *PriceSourceMock) GetPrices(ctx context.Context, assetIDs []domain.AssetID) map[domain.AssetID]osmomath.BigDec {
	if m.GetPricesFunc != nil {
		return m.GetPricesFunc(ctx, assetIDs)
	}
	return map[domain.AssetID]osmomath.BigDec{}
}
