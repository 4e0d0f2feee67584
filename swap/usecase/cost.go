package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
)

// startCostFetchLocked fetches the transaction cost estimate for the
// current committed state. The result is cached tagged with the state and
// slippage that produced it; a result arriving after either changed is
// dropped silently. On failure the flow reverts to the review step.
func (s *swapUseCase) startCostFetchLocked() {
	if s.costPending {
		return
	}

	s.costSeq++
	seq := s.costSeq
	s.costPending = true

	snapshot := s.state
	slippage := s.slippageBps
	route := s.trade.Route

	go func() {
		txBlob, gasCost, err := s.chain.EstimateCost(context.Background(), snapshot, slippage, route)

		s.mu.Lock()

		// Only a newer fetch owns the pending flag.
		if seq != s.costSeq {
			s.mu.Unlock()
			return
		}

		s.costPending = false

		// The state moved on while the estimate was in flight. The result
		// is useless, but the next button press fetches a fresh one.
		if snapshot != s.state || slippage != s.slippageBps {
			s.mu.Unlock()
			return
		}

		if err != nil {
			costErrorsCounter.Inc()
			s.logger.Error("cost estimate failed", zap.Error(err))

			// Revert to the review step; the committed state is left
			// untouched so the user can simply retry.
			s.review = false
			s.prevLabel = domain.ButtonLabelReview
			s.cost = nil
			s.lastError = domain.ReviewFailedMessage

			callback := s.onReviewFailure
			s.mu.Unlock()

			if callback != nil {
				callback(domain.ReviewFailedMessage)
			}
			return
		}

		s.cost = &domain.CostEstimate{
			TxBlob:      txBlob,
			GasCost:     gasCost,
			Source:      snapshot,
			SlippageBps: slippage,
		}
		s.lastError = ""
		s.mu.Unlock()
	}()
}
