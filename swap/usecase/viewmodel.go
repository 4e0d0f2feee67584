package usecase

import (
	"context"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
)

// LP fee percent charged per hop, by pool type.
var (
	stableHopFeePercent   = osmomath.MustNewBigDecFromStr("0.05")
	volatileHopFeePercent = osmomath.MustNewBigDecFromStr("0.3")

	oneHundredDec = osmomath.NewBigDec(100)
)

const (
	noRouteFoundMessage = "No route found"
	quoteFailedMessage  = "Failed to fetch quote"
)

// ViewModel implements mvc.SwapUsecase.
//
// Everything derived is recomputed on each read from the committed state
// under the lock; USD valuations are resolved against the price source
// afterwards so a slow pricing backend cannot stall the session.
func (s *swapUseCase) ViewModel(ctx context.Context) domain.SwapViewModel {
	s.mu.Lock()

	vm := domain.SwapViewModel{
		Connected:   s.connected,
		Inputs:      s.inputs,
		Committed:   s.state,
		ActiveSide:  s.active.String(),
		Button:      s.buttonLocked(),
		TradeState:  s.trade.State.String(),
		SlippageBps: s.slippageBps,
		Review:      s.review,
		LastReceipt: s.lastReceipt,
		LastError:   s.lastError,
	}

	for _, hop := range s.trade.Route {
		vm.PoolIDs = append(vm.PoolIDs, hop.PoolID)
	}

	switch s.trade.State {
	case domain.TradeStateNoRouteFound:
		vm.QuoteError = noRouteFoundMessage
	case domain.TradeStateInvalid:
		vm.QuoteError = quoteFailedMessage
	}

	sellAmount, sellOK := committedDec(s.state.Sell.Amount, s.decimalsLocked(domain.SideSell))
	buyAmount, buyOK := committedDec(s.state.Buy.Amount, s.decimalsLocked(domain.SideBuy))

	if sellOK && buyOK {
		vm.ExchangeRate = formatDec(buyAmount.Quo(sellAmount))
	}

	if len(s.trade.Route) > 0 {
		feePercent := osmomath.NewBigDec(0)
		for _, hop := range s.trade.Route {
			if hop.Stable {
				feePercent = feePercent.Add(stableHopFeePercent)
			} else {
				feePercent = feePercent.Add(volatileHopFeePercent)
			}
		}
		vm.FeePercent = formatDec(feePercent)
		if sellOK {
			vm.FeeValue = formatDec(sellAmount.Mul(feePercent).Quo(oneHundredDec))
		}
	}

	if s.cost != nil && s.cost.IsValidFor(s.state, s.slippageBps) {
		feeMeta, err := s.tokens.GetMetadataByAssetID(s.feeAssetID)
		if err == nil {
			vm.GasCost = domain.FormatUnits(s.cost.GasCost, feeMeta.Precision)
		}
	}

	if !s.sufficientFeeLocked() {
		vm.BridgeURL = s.bridgeURL
	}

	sellAsset := s.state.Sell.AssetID
	buyAsset := s.state.Buy.AssetID
	s.mu.Unlock()

	var priced []domain.AssetID
	if sellOK && sellAsset.IsSet() {
		priced = append(priced, sellAsset)
	}
	if buyOK && buyAsset.IsSet() {
		priced = append(priced, buyAsset)
	}
	if len(priced) == 0 {
		return vm
	}

	pricesByAsset := s.prices.GetPrices(ctx, priced)
	if price, ok := pricesByAsset[sellAsset]; ok && sellOK {
		vm.SellUSD = formatUSD(sellAmount.Mul(price))
	}
	if price, ok := pricesByAsset[buyAsset]; ok && buyOK {
		vm.BuyUSD = formatUSD(buyAmount.Mul(price))
	}

	return vm
}

// committedDec parses a committed amount into a positive decimal at the
// asset's precision. Round-tripping through base units normalizes partial
// entries such as "3." or ".5".
func committedDec(amount string, precision int) (osmomath.BigDec, bool) {
	baseUnits, err := domain.ParseUnits(amount, precision)
	if err != nil || !baseUnits.IsPositive() {
		return osmomath.BigDec{}, false
	}

	dec, err := osmomath.NewBigDecFromStr(domain.FormatUnits(baseUnits, precision))
	if err != nil {
		return osmomath.BigDec{}, false
	}
	return dec, true
}

// formatDec renders a decimal with trailing fractional zeros trimmed.
func formatDec(d osmomath.BigDec) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// formatUSD renders a USD valuation truncated to cents.
func formatUSD(value osmomath.BigDec) string {
	s := value.String()
	dot := strings.Index(s, ".")
	if dot < 0 {
		return "$" + s + ".00"
	}
	return "$" + s[:dot+3]
}
