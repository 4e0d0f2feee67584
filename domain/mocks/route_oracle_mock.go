package mocks

import (
	"context"

	"github.com/mirador-labs/swapd/domain"
)

var _ domain.RouteOracle = &RouteOracleMock{}

// RouteOracleMock is a mock implementation of the RouteOracle interface.
type RouteOracleMock struct {
	QuoteFunc func(ctx context.Context, state domain.SwapState, activeSide domain.Side) (domain.Trade, error)
}

func (m *RouteOracleMock) Quote(ctx context.Context, state domain.SwapState, activeSide domain.Side) (domain.Trade, error) {
	if m.QuoteFunc != nil {
		return m.QuoteFunc(ctx, state, activeSide)
	}
	panic("unimplemented")
}
