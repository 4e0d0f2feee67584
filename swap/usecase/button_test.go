package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/swap/usecase"
)

// actionable returns inputs for a connected session with amounts entered,
// enough balance and a valid quote.
func actionable() usecase.ButtonInputs {
	return usecase.ButtonInputs{
		ValidNetwork:  true,
		SufficientFee: true,
		TradeValid:    true,
		PreviousLabel: domain.ButtonLabelReview,
		FeeSymbol:     "ETH",
	}
}

func TestComputeButtonState(t *testing.T) {
	tests := []struct {
		name string
		in   func() usecase.ButtonInputs

		expectedLabel   string
		expectedEnabled bool
		expectedLoading bool
	}{
		{
			name: "actionable review",
			in:   actionable,

			expectedLabel:   domain.ButtonLabelReview,
			expectedEnabled: true,
		},
		{
			name: "wrong network wins over everything",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.ValidNetwork = false
				in.SubmitPending = true
				in.InsufficientBalance = true
				return in
			},

			expectedLabel:   domain.ButtonLabelIncorrectNetwork,
			expectedLoading: true,
		},
		{
			name: "submission pending wins over insufficient balance",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.SubmitPending = true
				in.InsufficientBalance = true
				return in
			},

			expectedLabel:   domain.ButtonLabelWaitingApproval,
			expectedLoading: true,
		},
		{
			name: "insufficient balance wins over fee shortfall",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.InsufficientBalance = true
				in.SufficientFee = false
				return in
			},

			expectedLabel: domain.ButtonLabelInsufficient,
		},
		{
			name: "fee shortfall names the fee asset",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.SufficientFee = false
				return in
			},

			expectedLabel: "Bridge more ETH to pay for gas",
		},
		{
			name: "missing amounts prompt for input",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.AmountsMissing = true
				return in
			},

			expectedLabel: domain.ButtonLabelInputAmounts,
		},
		{
			name: "review step retains previous swap label",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.Review = true
				in.PreviousLabel = domain.ButtonLabelSwap
				return in
			},

			expectedLabel:   domain.ButtonLabelSwap,
			expectedEnabled: true,
		},
		{
			name: "swap label disabled without a valid trade",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.Review = true
				in.PreviousLabel = domain.ButtonLabelSwap
				in.TradeValid = false
				return in
			},

			expectedLabel: domain.ButtonLabelSwap,
		},
		{
			name: "quote load spins without disabling the review label",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.QuoteLoading = true
				return in
			},

			expectedLabel:   domain.ButtonLabelReview,
			expectedEnabled: true,
			expectedLoading: true,
		},
		{
			name: "insufficient balance suppresses the quote spinner",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.InsufficientBalance = true
				in.QuoteLoading = true
				return in
			},

			expectedLabel: domain.ButtonLabelInsufficient,
		},
		{
			name: "background refetch spins",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.QuoteRefetching = true
				return in
			},

			expectedLabel:   domain.ButtonLabelReview,
			expectedEnabled: true,
			expectedLoading: true,
		},
		{
			name: "cost fetch spins while amounts are entered",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.Review = true
				in.PreviousLabel = domain.ButtonLabelSwap
				in.CostPending = true
				return in
			},

			expectedLabel:   domain.ButtonLabelSwap,
			expectedEnabled: true,
			expectedLoading: true,
		},
		{
			name: "cost fetch does not spin once amounts are cleared",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.AmountsMissing = true
				in.CostPending = true
				return in
			},

			expectedLabel: domain.ButtonLabelInputAmounts,
		},
		{
			name: "balance refresh spins",
			in: func() usecase.ButtonInputs {
				in := actionable()
				in.AmountsMissing = true
				in.BalancesPending = true
				return in
			},

			expectedLabel:   domain.ButtonLabelInputAmounts,
			expectedLoading: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			button := usecase.ComputeButtonState(tc.in())

			require.Equal(t, tc.expectedLabel, button.Label)
			require.Equal(t, tc.expectedEnabled, button.Enabled)
			require.Equal(t, tc.expectedLoading, button.Loading)
		})
	}
}
