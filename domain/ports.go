package domain

import (
	"context"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// RouteOracle finds the best trade across the pool graph for a committed
// swap state. Implementations may be slow and may be invoked repeatedly
// while a previous invocation is outstanding; the engine discards results
// whose originating state no longer matches the current state.
type RouteOracle interface {
	// Quote returns the best trade for the given state, quoting the side
	// opposite to activeSide. A missing route is reported via the trade
	// state, not an error.
	Quote(ctx context.Context, state SwapState, activeSide Side) (Trade, error)
}

// PriceSource returns USD prices for assets.
type PriceSource interface {
	// GetPrice returns the price of the given asset in the quote currency.
	// Returns PriceNotFoundError if the source has no quote for it.
	GetPrice(ctx context.Context, assetID AssetID) (osmomath.BigDec, error)

	// GetPrices returns prices for all given assets. Assets without a
	// price are omitted from the result.
	GetPrices(ctx context.Context, assetIDs []AssetID) map[AssetID]osmomath.BigDec
}

// ChainClient talks to the network node on behalf of the session wallet.
type ChainClient interface {
	// GetChainID returns the chain identifier the node is serving.
	GetChainID(ctx context.Context) (string, error)

	// GetBalances returns the wallet's balances in base units.
	GetBalances(ctx context.Context) ([]Balance, error)

	// EstimateCost builds the swap transaction for the given state and
	// returns its blob together with the gas cost.
	EstimateCost(ctx context.Context, state SwapState, slippageBps uint64, route []Hop) ([]byte, osmomath.Int, error)

	// Submit sends a previously estimated transaction blob for signing and
	// inclusion. Failures carry a structured SubmitError reason.
	Submit(ctx context.Context, txBlob []byte) (SwapResult, error)
}

// PreferenceStore persists the last-used asset pair across sessions.
type PreferenceStore interface {
	// Get returns the stored preference. A zero preference with a nil
	// error means nothing was stored yet.
	Get() (SwapPreference, error)

	// Set stores the given asset pair.
	Set(preference SwapPreference) error
}
