package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
)

// requestQuoteLocked issues a new oracle invocation for the current
// committed state. The invocation carries a monotonically increasing
// sequence together with a snapshot of the (state, active side) pair that
// produced it; the result is applied only if the pair still equals current
// values when it arrives. Superseded results are dropped silently.
func (s *swapUseCase) requestQuoteLocked(isRefetch bool) {
	s.quoteSeq++
	seq := s.quoteSeq

	bothAssets := s.state.Sell.AssetID.IsSet() && s.state.Buy.AssetID.IsSet()
	if !bothAssets || !isPositiveAmount(s.state.Get(s.active).Amount) {
		// Nothing to quote. Committed amounts are left untouched so that a
		// double side switch restores the original state; clearing goes
		// through the explicit clear path instead.
		s.quotePending = false
		s.trade = domain.Trade{State: domain.TradeStateNone}
		return
	}

	trigger := "user"
	if isRefetch {
		// A background re-poll keeps the previous quote on display and
		// must not reset the review flow.
		s.trade.State = domain.TradeStateRefetching
		trigger = "refetch"
	} else {
		s.trade.State = domain.TradeStateLoading
	}
	quoteRequestsCounter.WithLabelValues(trigger).Inc()

	s.quotePending = true
	snapshot := s.state
	activeSide := s.active

	go func() {
		trade, err := s.oracle.Quote(context.Background(), snapshot, activeSide)

		s.mu.Lock()
		defer s.mu.Unlock()

		if seq != s.quoteSeq || snapshot != s.state || activeSide != s.active {
			staleDroppedCounter.Inc()
			s.logger.Debug("dropped stale quote result", zap.Uint64("seq", seq))
			return
		}

		s.quotePending = false
		if err != nil {
			s.logger.Error("quote request failed", zap.Error(err))
			s.trade = domain.Trade{State: domain.TradeStateInvalid}
		} else {
			s.trade = trade
		}
		s.applyDerivedLocked()
	}()
}

// applyDerivedLocked writes the quote-derived amount into the committed and
// display state for the derived side only; the active side is never
// overwritten. Writes are idempotent: re-applying an identical result
// produces no state transition.
func (s *swapUseCase) applyDerivedLocked() {
	derivedSide := s.active.Opposite()
	value := s.deriveValueLocked()

	if value == s.state.Get(derivedSide).Amount && value == s.inputs.Get(derivedSide) {
		return
	}

	s.prevPreview = value
	s.state = s.state.WithAmount(derivedSide, value)
	s.inputs = s.inputs.WithAmount(derivedSide, value)
}

// deriveValueLocked computes the derived-side amount string from the
// current trade: amount out at the buy asset's precision when selling,
// amount in at the sell asset's precision when buying. Empty when the trade
// is unusable, either leg is zero or absent, or the precision is unknown.
func (s *swapUseCase) deriveValueLocked() string {
	trade := s.trade

	switch trade.State {
	case domain.TradeStateNone, domain.TradeStateInvalid, domain.TradeStateNoRouteFound:
		return ""
	}

	if trade.AmountIn.IsNil() || trade.AmountIn.IsZero() ||
		trade.AmountOut.IsNil() || trade.AmountOut.IsZero() {
		return ""
	}

	derivedAsset := s.state.Get(s.active.Opposite()).AssetID
	meta, err := s.tokens.GetMetadataByAssetID(derivedAsset)
	if err != nil {
		return ""
	}

	if s.active == domain.SideSell {
		return domain.FormatUnits(trade.AmountOut, meta.Precision)
	}
	return domain.FormatUnits(trade.AmountIn, meta.Precision)
}

// refetchLoop periodically re-polls the oracle for the current committed
// state while a valid quote is on display.
func (s *swapUseCase) refetchLoop() {
	ticker := time.NewTicker(s.refetchEvery)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			if s.connected && !s.quotePending && s.trade.State == domain.TradeStateValid {
				s.requestQuoteLocked(true)
			}
			s.mu.Unlock()
		}
	}
}
