package mocks

import (
	"context"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
)

var _ mvc.SwapUsecase = &SwapUsecaseMock{}

// SwapUsecaseMock is a mock implementation of the SwapUsecase interface.
type SwapUsecaseMock struct {
	ConnectFunc     func(ctx context.Context) error
	DisconnectFunc  func()
	TypeAmountFunc  func(side domain.Side, rawAmount string) error
	SelectAssetFunc func(side domain.Side, assetID domain.AssetID) error
	SwapAssetsFunc  func()
	SetMaxFunc      func(side domain.Side) error
	SetSlippageFunc func(bps uint64)
	PressButtonFunc func(ctx context.Context) error
	ViewModelFunc   func(ctx context.Context) domain.SwapViewModel
	ShutdownFunc    func()
}

func (m *SwapUsecaseMock) Connect(ctx context.Context) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx)
	}
	panic("unimplemented")
}

func (m *SwapUsecaseMock) Disconnect() {
	if m.DisconnectFunc != nil {
		m.DisconnectFunc()
	}
}

func (m *SwapUsecaseMock) TypeAmount(side domain.Side, rawAmount string) error {
	if m.TypeAmountFunc != nil {
		return m.TypeAmountFunc(side, rawAmount)
	}
	panic("unimplemented")
}

func (m *SwapUsecaseMock) SelectAsset(side domain.Side, assetID domain.AssetID) error {
	if m.SelectAssetFunc != nil {
		return m.SelectAssetFunc(side, assetID)
	}
	panic("unimplemented")
}

func (m *SwapUsecaseMock) SwapAssets() {
	if m.SwapAssetsFunc != nil {
		m.SwapAssetsFunc()
	}
}

func (m *SwapUsecaseMock) SetMax(side domain.Side) error {
	if m.SetMaxFunc != nil {
		return m.SetMaxFunc(side)
	}
	panic("unimplemented")
}

func (m *SwapUsecaseMock) SetSlippage(bps uint64) {
	if m.SetSlippageFunc != nil {
		m.SetSlippageFunc(bps)
	}
}

func (m *SwapUsecaseMock) PressButton(ctx context.Context) error {
	if m.PressButtonFunc != nil {
		return m.PressButtonFunc(ctx)
	}
	panic("unimplemented")
}

func (m *SwapUsecaseMock) ViewModel(ctx context.Context) domain.SwapViewModel {
	if m.ViewModelFunc != nil {
		return m.ViewModelFunc(ctx)
	}
	return domain.SwapViewModel{}
}

func (m *SwapUsecaseMock) OnSwapSuccess(func(domain.SwapReceipt)) {}

func (m *SwapUsecaseMock) OnSwapFailure(func(message string)) {}

func (m *SwapUsecaseMock) OnReviewFailure(func(message string)) {}

func (m *SwapUsecaseMock) Shutdown() {
	if m.ShutdownFunc != nil {
		m.ShutdownFunc()
	}
}
