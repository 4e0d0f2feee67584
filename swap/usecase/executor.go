package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
)

// PressButton implements mvc.SwapUsecase.
//
// The first press on an actionable state enters the review step and fetches
// the transaction cost; the second submits the previously estimated
// transaction. Presses on a blocked label are no-ops.
func (s *swapUseCase) PressButton(ctx context.Context) error {
	s.mu.Lock()

	if !s.connected {
		s.mu.Unlock()
		return domain.ErrNotConnected
	}

	button := s.buttonLocked()

	switch button.Label {
	case domain.ButtonLabelReview:
		if !button.Enabled {
			s.mu.Unlock()
			return nil
		}
		s.review = true
		s.prevLabel = domain.ButtonLabelSwap
		s.startCostFetchLocked()
		s.mu.Unlock()
		return nil

	case domain.ButtonLabelSwap:
		if !button.Enabled || s.submitPending || s.amountsMissingLocked() {
			s.mu.Unlock()
			return nil
		}

		// The estimate is consumed exactly once; a stale or missing one
		// is re-fetched on this explicit user action instead.
		if s.cost == nil || !s.cost.IsValidFor(s.state, s.slippageBps) {
			s.startCostFetchLocked()
			s.mu.Unlock()
			return nil
		}

		estimate := *s.cost
		receipt := domain.SwapReceipt{Sell: s.state.Sell, Buy: s.state.Buy}
		s.submitPending = true
		s.mu.Unlock()

		go s.submit(estimate, receipt)
		return nil

	default:
		s.mu.Unlock()
		return nil
	}
}

// submit sends the estimated transaction and converts the outcome into
// state transitions. The user declining to sign is silent; a slippage
// violation gets its specific message; everything else is generic. Nothing
// is retried automatically.
func (s *swapUseCase) submit(estimate domain.CostEstimate, receipt domain.SwapReceipt) {
	result, err := s.chain.Submit(context.Background(), estimate.TxBlob)

	s.mu.Lock()
	s.submitPending = false

	if err != nil {
		if domain.IsUserDeclined(err) {
			swapsCounter.WithLabelValues("declined").Inc()
			s.logger.Info("user declined to sign the swap")
			s.mu.Unlock()
			return
		}

		swapsCounter.WithLabelValues("failure").Inc()
		s.logger.Error("swap submission failed", zap.Error(err))

		message := domain.GenericFailedMessage
		if domain.IsSlippageViolation(err) {
			message = domain.SlippageFailedMessage
		}
		s.lastError = message

		callback := s.onFailure
		s.mu.Unlock()

		if callback != nil {
			callback(message)
		}
		return
	}

	swapsCounter.WithLabelValues("success").Inc()
	s.logger.Info("swap submitted",
		zap.String("tx_id", result.ID),
		zap.String("sell_amount", receipt.Sell.Amount),
		zap.String("buy_amount", receipt.Buy.Amount),
	)

	receipt.TxID = result.ID
	s.lastReceipt = &receipt
	s.resetToSeededLocked()
	s.balancesPending = true

	callback := s.onSuccess
	s.mu.Unlock()

	if callback != nil {
		callback(receipt)
	}

	// Exactly one balance refresh per successful swap.
	s.refreshBalances()
}
