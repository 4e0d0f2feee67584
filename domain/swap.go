package domain

import (
	"github.com/osmosis-labs/osmosis/osmomath"
)

// AssetID is an opaque identifier of a fungible asset.
// The zero value means "no asset selected".
type AssetID string

// IsSet returns true if the asset is selected.
func (a AssetID) IsSet() bool {
	return a != ""
}

// Side identifies one of the two legs of the swap form.
type Side int

const (
	SideSell Side = iota
	SideBuy
)

// Opposite returns the mirror side.
func (s Side) Opposite() Side {
	if s == SideSell {
		return SideBuy
	}
	return SideSell
}

// String returns the string representation of the side.
func (s Side) String() string {
	if s == SideSell {
		return "sell"
	}
	return "buy"
}

// ParseSide parses a side from its string representation.
func ParseSide(s string) (Side, error) {
	switch s {
	case "sell":
		return SideSell, nil
	case "buy":
		return SideBuy, nil
	default:
		return 0, InvalidSideError{Side: s}
	}
}

// SwapSide is one leg of the committed swap state. Amount is a canonical
// decimal string at the asset's precision. Empty amount means "not entered".
type SwapSide struct {
	AssetID AssetID `json:"asset_id"`
	Amount  string  `json:"amount"`
}

// SwapState is the committed two-sided swap state. This is the value sent
// to the route oracle and, later, to the executor.
type SwapState struct {
	Sell SwapSide `json:"sell"`
	Buy  SwapSide `json:"buy"`
}

// Get returns the leg for the given side.
func (s SwapState) Get(side Side) SwapSide {
	if side == SideSell {
		return s.Sell
	}
	return s.Buy
}

// WithAmount returns a copy with the amount set on the given side.
func (s SwapState) WithAmount(side Side, amount string) SwapState {
	if side == SideSell {
		s.Sell.Amount = amount
	} else {
		s.Buy.Amount = amount
	}
	return s
}

// WithAsset returns a copy with the asset set on the given side.
func (s SwapState) WithAsset(side Side, assetID AssetID) SwapState {
	if side == SideSell {
		s.Sell.AssetID = assetID
	} else {
		s.Buy.AssetID = assetID
	}
	return s
}

// Swapped returns a copy with the two legs exchanged.
func (s SwapState) Swapped() SwapState {
	return SwapState{Sell: s.Buy, Buy: s.Sell}
}

// InputsState is the raw per-side display text. It tracks keystrokes
// synchronously and is decoupled from SwapState until the debounce fires.
type InputsState struct {
	Sell string `json:"sell"`
	Buy  string `json:"buy"`
}

// Get returns the raw text for the given side.
func (i InputsState) Get(side Side) string {
	if side == SideSell {
		return i.Sell
	}
	return i.Buy
}

// WithAmount returns a copy with the raw text set on the given side.
func (i InputsState) WithAmount(side Side, amount string) InputsState {
	if side == SideSell {
		i.Sell = amount
	} else {
		i.Buy = amount
	}
	return i
}

// Swapped returns a copy with the two fields exchanged.
func (i InputsState) Swapped() InputsState {
	return InputsState{Sell: i.Buy, Buy: i.Sell}
}

// TradeState describes the lifecycle of the current best trade.
type TradeState int

const (
	// TradeStateNone means no quote has been requested for the current state.
	TradeStateNone TradeState = iota
	// TradeStateLoading means a user-triggered quote is in flight.
	TradeStateLoading
	// TradeStateValid means the trade is executable.
	TradeStateValid
	// TradeStateInvalid means the oracle rejected the request.
	TradeStateInvalid
	// TradeStateNoRouteFound means no path exists through the pool graph.
	TradeStateNoRouteFound
	// TradeStateRefetching means a background re-poll of an already valid
	// quote is in flight. Distinguished from TradeStateLoading so that the
	// review flow is not reset by periodic refreshes.
	TradeStateRefetching
)

// String returns the string representation of the trade state.
func (t TradeState) String() string {
	switch t {
	case TradeStateLoading:
		return "loading"
	case TradeStateValid:
		return "valid"
	case TradeStateInvalid:
		return "invalid"
	case TradeStateNoRouteFound:
		return "no_route_found"
	case TradeStateRefetching:
		return "refetching"
	default:
		return "none"
	}
}

// Hop is a single pool traversal within a route.
type Hop struct {
	PoolID   string  `json:"pool_id"`
	AssetIn  AssetID `json:"asset_in"`
	AssetOut AssetID `json:"asset_out"`
	// Stable pools charge a reduced LP fee.
	Stable bool `json:"stable"`
}

// Trade is the best trade found by the route oracle for a committed state.
type Trade struct {
	Route     []Hop        `json:"route"`
	AmountIn  osmomath.Int `json:"amount_in"`
	AmountOut osmomath.Int `json:"amount_out"`
	State     TradeState   `json:"state"`
}

// CostEstimate is a cached transaction cost estimate. It is only valid
// while Source and SlippageBps still match the current committed state.
type CostEstimate struct {
	TxBlob      []byte       `json:"tx_blob"`
	GasCost     osmomath.Int `json:"gas_cost"`
	Source      SwapState    `json:"source"`
	SlippageBps uint64       `json:"slippage_bps"`
}

// IsValidFor reports whether the estimate was computed from the given
// state and slippage setting.
func (c CostEstimate) IsValidFor(state SwapState, slippageBps uint64) bool {
	return c.Source == state && c.SlippageBps == slippageBps
}

// Balance is a single wallet balance entry in base units.
type Balance struct {
	AssetID AssetID      `json:"asset_id"`
	Amount  osmomath.Int `json:"amount"`
}

// SwapResult is the outcome of a submitted swap transaction.
type SwapResult struct {
	ID string `json:"id"`
}

// SwapReceipt summarizes a successfully executed swap. The legs carry the
// pre-reset amounts for display in the confirmation message.
type SwapReceipt struct {
	TxID string   `json:"tx_id"`
	Sell SwapSide `json:"sell"`
	Buy  SwapSide `json:"buy"`
}

// SwapPreference is the persisted last-used asset pair.
type SwapPreference struct {
	Sell AssetID `json:"sell"`
	Buy  AssetID `json:"buy"`
}

// Token represents an asset's registry metadata.
type Token struct {
	// Symbol is the human readable ticker.
	Symbol string `json:"symbol"`
	// Precision is the number of decimal places of the asset.
	Precision int `json:"decimals"`
	// IsUnlisted is true if the token is hidden from the default list.
	IsUnlisted bool `json:"unlisted"`
}
