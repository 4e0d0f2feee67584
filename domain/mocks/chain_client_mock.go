package mocks

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
)

var _ domain.ChainClient = &ChainClientMock{}

// ChainClientMock is a mock implementation of the ChainClient interface.
type ChainClientMock struct {
	GetChainIDFunc   func(ctx context.Context) (string, error)
	GetBalancesFunc  func(ctx context.Context) ([]domain.Balance, error)
	EstimateCostFunc func(ctx context.Context, state domain.SwapState, slippageBps uint64, route []domain.Hop) ([]byte, osmomath.Int, error)
	SubmitFunc       func(ctx context.Context, txBlob []byte) (domain.SwapResult, error)
}

func (m *ChainClientMock) GetChainID(ctx context.Context) (string, error) {
	if m.GetChainIDFunc != nil {
		return m.GetChainIDFunc(ctx)
	}
	panic("unimplemented")
}

func (m *ChainClientMock) GetBalances(ctx context.Context) ([]domain.Balance, error) {
	if m.GetBalancesFunc != nil {
		return m.GetBalancesFunc(ctx)
	}
	panic("unimplemented")
}

func (m *ChainClientMock) EstimateCost(ctx context.Context, state domain.SwapState, slippageBps uint64, route []domain.Hop) ([]byte, osmomath.Int, error) {
	if m.EstimateCostFunc != nil {
		return m.EstimateCostFunc(ctx, state, slippageBps, route)
	}
	panic("unimplemented")
}

func (m *ChainClientMock) Submit(ctx context.Context, txBlob []byte) (domain.SwapResult, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, txBlob)
	}
	panic("unimplemented")
}
