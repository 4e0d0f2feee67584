package domain

// Call-to-action labels. The button cycles Review -> Swap for a single
// trade attempt; every other label reports a blocking condition.
const (
	ButtonLabelReview           = "Review"
	ButtonLabelSwap             = "Swap"
	ButtonLabelInputAmounts     = "Input amounts"
	ButtonLabelIncorrectNetwork = "Incorrect network"
	ButtonLabelWaitingApproval  = "Waiting for approval in wallet"
	ButtonLabelInsufficient     = "Insufficient balance"

	// ButtonLabelBridgeFmt is formatted with the fee asset's symbol.
	ButtonLabelBridgeFmt = "Bridge more %s to pay for gas"
)

// User-facing failure messages.
const (
	ReviewFailedMessage   = "Review failed, please try again"
	SlippageFailedMessage = "Slippage exceeds limit. Adjust settings and try again."
	GenericFailedMessage  = "An error occurred. Please try again."
)

// ButtonState is the derived call-to-action state. Loading is independent
// of Enabled so the button can show a spinner while keeping its label.
type ButtonState struct {
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Loading bool   `json:"loading"`
}

// SwapViewModel is the full session state exposed to the surrounding UI.
// All derived values are recomputed explicitly on read.
type SwapViewModel struct {
	Connected  bool        `json:"connected"`
	Inputs     InputsState `json:"inputs"`
	Committed  SwapState   `json:"committed"`
	ActiveSide string      `json:"active_side"`
	Button     ButtonState `json:"button"`

	TradeState string   `json:"trade_state"`
	PoolIDs    []string `json:"pool_ids,omitempty"`
	// QuoteError is shown in place of the derived-side amount.
	QuoteError string `json:"quote_error,omitempty"`

	// ExchangeRate is buy amount over sell amount, empty when undefined.
	ExchangeRate string `json:"exchange_rate,omitempty"`
	// FeePercent is the summed LP fee across the route's hops.
	FeePercent string `json:"fee_percent,omitempty"`
	// FeeValue is the fee expressed in the sell asset.
	FeeValue string `json:"fee_value,omitempty"`
	// GasCost is the cached estimate's cost in the fee asset, empty until
	// a review estimate succeeded.
	GasCost string `json:"gas_cost,omitempty"`

	SellUSD string `json:"sell_usd,omitempty"`
	BuyUSD  string `json:"buy_usd,omitempty"`

	SlippageBps uint64 `json:"slippage_bps"`
	Review      bool   `json:"review"`

	// BridgeURL is set when the fee-asset balance cannot cover the reserve.
	BridgeURL string `json:"bridge_url,omitempty"`

	LastReceipt *SwapReceipt `json:"last_receipt,omitempty"`
	LastError   string       `json:"last_error,omitempty"`
}
