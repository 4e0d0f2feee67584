package usecase

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
)

// ButtonInputs is the full set of conditions the call-to-action is derived
// from.
type ButtonInputs struct {
	ValidNetwork        bool
	SubmitPending       bool
	InsufficientBalance bool
	SufficientFee       bool
	AmountsMissing      bool
	Review              bool
	TradeValid          bool

	// PreviousLabel is retained when no condition matches, which keeps the
	// two-phase Review -> Swap flow from flickering while a quote loads.
	PreviousLabel string
	FeeSymbol     string

	BalancesPending bool
	QuoteLoading    bool
	QuoteRefetching bool
	CostPending     bool
}

// ComputeButtonState derives the call-to-action from the given conditions.
// The label follows a strict precedence: wrong network, submission in
// flight, insufficient sell balance, insufficient fee balance, then the
// review/input prompt; otherwise the previous label is retained.
//
// Loading is derived independently of Enabled so the button can show a
// spinner while still reflecting the correct label.
func ComputeButtonState(in ButtonInputs) domain.ButtonState {
	label := in.PreviousLabel

	switch {
	case !in.ValidNetwork:
		label = domain.ButtonLabelIncorrectNetwork
	case in.SubmitPending:
		label = domain.ButtonLabelWaitingApproval
	case in.InsufficientBalance:
		label = domain.ButtonLabelInsufficient
	case !in.SufficientFee:
		label = fmt.Sprintf(domain.ButtonLabelBridgeFmt, in.FeeSymbol)
	case !in.Review && !in.AmountsMissing:
		label = domain.ButtonLabelReview
	case in.AmountsMissing:
		label = domain.ButtonLabelInputAmounts
	}

	enabled := false
	switch label {
	case domain.ButtonLabelReview:
		enabled = true
	case domain.ButtonLabelSwap:
		enabled = in.TradeValid
	}

	loading := in.SubmitPending ||
		in.BalancesPending ||
		in.QuoteRefetching ||
		(in.QuoteLoading && label != domain.ButtonLabelInsufficient) ||
		(!in.AmountsMissing && !in.InsufficientBalance && in.CostPending)

	return domain.ButtonState{Label: label, Enabled: enabled, Loading: loading}
}

// buttonLocked derives the current CTA and updates the retained-label memo.
func (s *swapUseCase) buttonLocked() domain.ButtonState {
	button := ComputeButtonState(s.buttonInputsLocked())
	s.prevLabel = button.Label
	return button
}

func (s *swapUseCase) buttonInputsLocked() ButtonInputs {
	return ButtonInputs{
		ValidNetwork:        s.validNetwork,
		SubmitPending:       s.submitPending,
		InsufficientBalance: s.insufficientBalanceLocked(),
		SufficientFee:       s.sufficientFeeLocked(),
		AmountsMissing:      s.amountsMissingLocked(),
		Review:              s.review,
		// A background refetch keeps the previous valid quote on display,
		// so it does not gate the button.
		TradeValid: s.trade.State == domain.TradeStateValid ||
			s.trade.State == domain.TradeStateRefetching,

		PreviousLabel: s.prevLabel,
		FeeSymbol:     s.feeSymbolLocked(),

		BalancesPending: s.balancesPending,
		QuoteLoading:    s.trade.State == domain.TradeStateLoading,
		QuoteRefetching: s.trade.State == domain.TradeStateRefetching,
		CostPending:     s.costPending,
	}
}

// insufficientBalanceLocked compares the displayed sell value against the
// sell-asset balance. An unparseable value reports false: the missing-amount
// branch of the CTA owns that case.
func (s *swapUseCase) insufficientBalanceLocked() bool {
	assetID := s.state.Sell.AssetID
	if !assetID.IsSet() {
		return false
	}

	meta, err := s.tokens.GetMetadataByAssetID(assetID)
	if err != nil {
		return false
	}

	required, err := domain.ParseUnits(s.inputs.Sell, meta.Precision)
	if err != nil {
		return false
	}

	balance, ok := s.balances[assetID]
	if !ok {
		balance = osmomath.ZeroInt()
	}
	return balance.LT(required)
}

// sufficientFeeLocked checks that the fee-asset balance covers the minimum
// reserve, plus the sell amount when the fee asset itself is being sold.
func (s *swapUseCase) sufficientFeeLocked() bool {
	if !s.feeAssetID.IsSet() {
		return true
	}

	meta, err := s.tokens.GetMetadataByAssetID(s.feeAssetID)
	if err != nil {
		return true
	}

	required, err := domain.ParseUnits(s.feeReserve, meta.Precision)
	if err != nil {
		return true
	}

	if s.state.Sell.AssetID == s.feeAssetID {
		if sellAmount, err := domain.ParseUnits(s.state.Sell.Amount, meta.Precision); err == nil {
			required = required.Add(sellAmount)
		}
	}

	balance, ok := s.balances[s.feeAssetID]
	if !ok {
		balance = osmomath.ZeroInt()
	}
	return balance.GTE(required)
}

func (s *swapUseCase) feeSymbolLocked() string {
	meta, err := s.tokens.GetMetadataByAssetID(s.feeAssetID)
	if err != nil {
		return "funds"
	}
	return meta.Symbol
}
