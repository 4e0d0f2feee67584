package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
)

// amountPattern returns the validation pattern for an asset with the given
// precision: digits, at most one separator, at most precision fractional
// digits.
func amountPattern(precision int) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^[0-9]*[.]?[0-9]{0,%d}$`, precision))
}

// TypeAmount implements mvc.SwapUsecase.
func (s *swapUseCase) TypeAmount(side domain.Side, rawAmount string) error {
	// A comma separator is normalized to a period before validation.
	rawAmount = strings.ReplaceAll(rawAmount, ",", ".")

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return domain.ErrNotConnected
	}

	return s.typeLocked(side, rawAmount)
}

func (s *swapUseCase) typeLocked(side domain.Side, rawAmount string) error {
	if rawAmount == "" {
		s.clearLocked(side)
		return nil
	}

	precision := s.decimalsLocked(side)
	if !amountPattern(precision).MatchString(rawAmount) {
		// Rejected keystrokes are simply not applied.
		return domain.PrecisionExceededError{Amount: rawAmount, Precision: precision}
	}

	// Display state tracks the keystroke synchronously.
	s.inputs = s.inputs.WithAmount(side, rawAmount)

	if side != s.active {
		// Typing in the other field re-targets the oracle in the same
		// tick; it never waits for the debounce.
		s.active = side
		s.prevPreview = ""
		s.cancelDebounceLocked()
		s.commitLocked(side, rawAmount)
		return nil
	}

	s.scheduleCommitLocked(side, rawAmount)
	return nil
}

// clearLocked commits the empty amount immediately on both sides and resets
// the preview memo so a future entry is not diffed against stale text.
func (s *swapUseCase) clearLocked(side domain.Side) {
	s.cancelDebounceLocked()

	s.state = s.state.WithAmount(domain.SideSell, "").WithAmount(domain.SideBuy, "")
	s.inputs = domain.InputsState{}
	s.prevPreview = ""
	s.active = side
	s.review = false
	s.prevLabel = domain.ButtonLabelReview
	s.cost = nil

	// Any in-flight quote was issued for the pre-clear state.
	s.quoteSeq++
	s.quotePending = false
	s.trade = domain.Trade{State: domain.TradeStateNone}
}

// scheduleCommitLocked coalesces rapid keystrokes into one commit after the
// debounce window elapses.
func (s *swapUseCase) scheduleCommitLocked(side domain.Side, amount string) {
	s.cancelDebounceLocked()

	seq := s.debounceSeq
	s.debounce = time.AfterFunc(s.debounceWindow, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// A newer keystroke or an immediate-commit trigger superseded
		// this timer while it was firing.
		if seq != s.debounceSeq {
			return
		}
		s.commitLocked(side, amount)
	})
}

func (s *swapUseCase) cancelDebounceLocked() {
	s.debounceSeq++
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
}

// commitLocked writes the amount into committed state and re-targets the
// oracle. Committing invalidates the review step.
func (s *swapUseCase) commitLocked(side domain.Side, amount string) {
	s.state = s.state.WithAmount(side, amount)
	s.review = false
	s.requestQuoteLocked(false)
}

// SetMax implements mvc.SwapUsecase.
func (s *swapUseCase) SetMax(side domain.Side) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return domain.ErrNotConnected
	}

	assetID := s.state.Get(side).AssetID
	if !assetID.IsSet() {
		return domain.ErrBadParamInput
	}

	meta, err := s.tokens.GetMetadataByAssetID(assetID)
	if err != nil {
		return err
	}

	balance, ok := s.balances[assetID]
	if !ok {
		balance = osmomath.ZeroInt()
	}

	amount := balance
	if side == domain.SideSell && assetID == s.feeAssetID {
		// Keep the fee reserve out of a max-sell so the wallet cannot
		// zero out its gas funds. When the reserve exceeds the balance
		// the full balance is used.
		reserve, err := domain.ParseUnits(s.feeReserve, meta.Precision)
		if err == nil {
			remainder := balance.Sub(reserve)
			if remainder.IsPositive() {
				amount = remainder
			}
		}
	}

	return s.typeLocked(side, domain.FormatUnits(amount, meta.Precision))
}
