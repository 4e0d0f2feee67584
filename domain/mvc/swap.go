package mvc

import (
	"context"

	"github.com/mirador-labs/swapd/domain"
)

// SwapUsecase is the swap session engine. All operations are safe for
// concurrent use; mutations are serialized internally so that committed
// state, display state, the review flag and the cost cache stay consistent
// despite races between the debounce timer, quote fetches, cost fetches and
// submission.
type SwapUsecase interface {
	// Connect seeds the session from the persisted preference, validates
	// the network and loads balances.
	Connect(ctx context.Context) error

	// Disconnect resets the session to the seeded state. In-flight quote
	// and cost results tagged with the pre-reset state are discarded.
	Disconnect()

	// TypeAmount applies a keystroke on the given side. Valid input
	// updates the display state synchronously and schedules a debounced
	// commit; clearing commits immediately on both sides. Input failing
	// the asset's precision pattern is rejected and not applied.
	TypeAmount(side domain.Side, rawAmount string) error

	// SelectAsset sets the asset for the given side. Selecting the asset
	// already present on the opposite side swaps the two sides instead.
	SelectAsset(side domain.Side, assetID domain.AssetID) error

	// SwapAssets exchanges the two sides and re-targets the quote.
	SwapAssets()

	// SetMax sets the side's amount to the full balance, minus the fee
	// reserve when the fee-paying asset is being sold.
	SetMax(side domain.Side) error

	// SetSlippage updates the slippage tolerance, invalidating any cached
	// cost estimate.
	SetSlippage(bps uint64)

	// PressButton advances the two-phase Review -> Swap flow: the first
	// press enters review and fetches the transaction cost, the second
	// submits the estimated transaction.
	PressButton(ctx context.Context) error

	// ViewModel derives the full session view model from current state.
	ViewModel(ctx context.Context) domain.SwapViewModel

	// OnSwapSuccess registers a callback fired after a successful swap
	// with the pre-reset amounts.
	OnSwapSuccess(func(domain.SwapReceipt))

	// OnSwapFailure registers a callback fired when a submission fails for
	// any reason other than the user declining to sign.
	OnSwapFailure(func(message string))

	// OnReviewFailure registers a callback fired when the cost estimate
	// fails and the flow reverts to the review step.
	OnReviewFailure(func(message string))

	// Shutdown stops the background quote re-poll.
	Shutdown()
}
