package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
	"github.com/mirador-labs/swapd/log"
)

var _ mvc.SwapUsecase = &swapUseCase{}

// swapUseCase is the swap session engine. A single mutex serializes every
// mutation; asynchronous results (quote, cost, submission, balance refresh)
// re-acquire it and are discarded when the state tag they were issued for no
// longer matches current state. There is no hard cancellation of in-flight
// calls; staleness tags are the correctness mechanism.
type swapUseCase struct {
	logger log.Logger

	oracle domain.RouteOracle
	tokens mvc.TokensUsecase
	prices domain.PriceSource
	chain  domain.ChainClient
	prefs  domain.PreferenceStore

	expectedChainID string
	debounceWindow  time.Duration
	refetchEvery    time.Duration
	defaultSlippage uint64
	feeAssetID      domain.AssetID
	feeReserve      string
	bridgeURL       string
	defaultSell     domain.AssetID
	defaultBuy      domain.AssetID

	mu sync.Mutex

	connected    bool
	validNetwork bool

	// seeded is the connect-time state the session resets to on disconnect
	// or a successful swap.
	seeded domain.SwapState
	state  domain.SwapState
	inputs domain.InputsState
	active domain.Side

	slippageBps uint64
	review      bool
	// prevLabel retains the last computed CTA label so the two-phase
	// Review -> Swap flow does not flicker while a quote is loading.
	prevLabel string
	// prevPreview memoizes the last derived-side value written by the
	// reconciler. Reset on clear and side switches.
	prevPreview string

	balances        map[domain.AssetID]osmomath.Int
	balancesPending bool

	trade        domain.Trade
	quoteSeq     uint64
	quotePending bool

	cost        *domain.CostEstimate
	costSeq     uint64
	costPending bool

	submitPending bool

	lastReceipt *domain.SwapReceipt
	lastError   string

	debounce    *time.Timer
	debounceSeq uint64

	stopOnce sync.Once
	stopCh   chan struct{}

	onSuccess       func(domain.SwapReceipt)
	onFailure       func(message string)
	onReviewFailure func(message string)
}

var (
	quoteRequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: domain.SwapdQuoteRequestsMetricName,
			Help: "Total number of quote requests issued to the route oracle",
		},
		[]string{"trigger"},
	)
	staleDroppedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: domain.SwapdQuoteStaleDroppedMetricName,
			Help: "Total number of oracle results dropped as stale",
		},
	)
	costErrorsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: domain.SwapdCostEstimateErrorsMetricName,
			Help: "Total number of failed transaction cost estimates",
		},
	)
	swapsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: domain.SwapdSwapsMetricName,
			Help: "Total number of submitted swaps",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(quoteRequestsCounter)
	prometheus.MustRegister(staleDroppedCounter)
	prometheus.MustRegister(costErrorsCounter)
	prometheus.MustRegister(swapsCounter)
}

// NewSwapUsecase will create a new swap session engine.
func NewSwapUsecase(config *domain.Config, oracle domain.RouteOracle, tokens mvc.TokensUsecase, prices domain.PriceSource, chain domain.ChainClient, prefs domain.PreferenceStore, logger log.Logger) mvc.SwapUsecase {
	swapConfig := config.Swap

	s := &swapUseCase{
		logger: logger,

		oracle: oracle,
		tokens: tokens,
		prices: prices,
		chain:  chain,
		prefs:  prefs,

		expectedChainID: config.Chain.ChainID,
		debounceWindow:  time.Duration(swapConfig.DebounceMs) * time.Millisecond,
		refetchEvery:    time.Duration(swapConfig.QuoteRefetchMs) * time.Millisecond,
		defaultSlippage: swapConfig.DefaultSlippageBps,
		feeAssetID:      swapConfig.FeeAssetID,
		feeReserve:      swapConfig.FeeReserve,
		bridgeURL:       swapConfig.BridgeURL,
		defaultSell:     swapConfig.DefaultSellAssetID,
		defaultBuy:      swapConfig.DefaultBuyAssetID,

		active:      domain.SideSell,
		slippageBps: swapConfig.DefaultSlippageBps,
		prevLabel:   domain.ButtonLabelReview,
		balances:    map[domain.AssetID]osmomath.Int{},

		stopCh: make(chan struct{}),
	}

	if s.refetchEvery > 0 {
		go s.refetchLoop()
	}

	return s
}

// Connect implements mvc.SwapUsecase.
func (s *swapUseCase) Connect(ctx context.Context) error {
	chainID, err := s.chain.GetChainID(ctx)
	if err != nil {
		return err
	}

	preference, err := s.prefs.Get()
	if err != nil {
		s.logger.Warn("failed to read swap preference, falling back to defaults", zap.Error(err))
		preference = domain.SwapPreference{}
	}
	if !preference.Sell.IsSet() {
		preference.Sell = s.defaultSell
	}
	if !preference.Buy.IsSet() {
		preference.Buy = s.defaultBuy
	}

	balances, err := s.chain.GetBalances(ctx)
	if err != nil {
		// A session without balances is still usable; every amount shows
		// as insufficient until the next refresh succeeds.
		s.logger.Error("failed to fetch balances on connect", zap.Error(err))
		balances = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = true
	s.validNetwork = chainID == s.expectedChainID
	s.seeded = domain.SwapState{
		Sell: domain.SwapSide{AssetID: preference.Sell},
		Buy:  domain.SwapSide{AssetID: preference.Buy},
	}
	s.setBalancesLocked(balances)
	s.resetToSeededLocked()

	s.logger.Info("session connected",
		zap.String("chain_id", chainID),
		zap.Bool("valid_network", s.validNetwork),
		zap.String("sell_asset", string(preference.Sell)),
		zap.String("buy_asset", string(preference.Buy)),
	)

	return nil
}

// Disconnect implements mvc.SwapUsecase.
func (s *swapUseCase) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.connected = false
	s.resetToSeededLocked()
}

// SelectAsset implements mvc.SwapUsecase.
func (s *swapUseCase) SelectAsset(side domain.Side, assetID domain.AssetID) error {
	s.mu.Lock()

	if !s.connected {
		s.mu.Unlock()
		return domain.ErrNotConnected
	}

	// Selecting the asset already on the opposite side swaps the sides
	// instead of producing a duplicate pair.
	if assetID.IsSet() && s.state.Get(side.Opposite()).AssetID == assetID {
		s.mu.Unlock()
		s.SwapAssets()
		return nil
	}

	// The displayed amount is committed together with the asset change so
	// the quote targets what the user currently sees.
	s.state = s.state.WithAsset(side, assetID).WithAmount(side, s.inputs.Get(side))
	s.active = side
	s.review = false
	s.requestQuoteLocked(false)

	preference := domain.SwapPreference{Sell: s.state.Sell.AssetID, Buy: s.state.Buy.AssetID}
	s.mu.Unlock()

	if err := s.prefs.Set(preference); err != nil {
		s.logger.Warn("failed to persist swap preference", zap.Error(err))
	}

	return nil
}

// SwapAssets implements mvc.SwapUsecase.
func (s *swapUseCase) SwapAssets() {
	s.mu.Lock()

	s.cancelDebounceLocked()
	s.state = s.state.Swapped()
	s.inputs = s.inputs.Swapped()
	s.active = domain.SideSell
	s.prevPreview = ""
	s.review = false
	s.requestQuoteLocked(false)

	preference := domain.SwapPreference{Sell: s.state.Sell.AssetID, Buy: s.state.Buy.AssetID}
	connected := s.connected
	s.mu.Unlock()

	if connected {
		if err := s.prefs.Set(preference); err != nil {
			s.logger.Warn("failed to persist swap preference", zap.Error(err))
		}
	}
}

// SetSlippage implements mvc.SwapUsecase.
func (s *swapUseCase) SetSlippage(bps uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bps == s.slippageBps {
		return
	}
	s.slippageBps = bps
	// Any cached estimate was computed for the previous tolerance. The
	// staleness tag makes this advisory; re-fetch happens on user action.
}

// OnSwapSuccess implements mvc.SwapUsecase.
func (s *swapUseCase) OnSwapSuccess(callback func(domain.SwapReceipt)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSuccess = callback
}

// OnSwapFailure implements mvc.SwapUsecase.
func (s *swapUseCase) OnSwapFailure(callback func(message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFailure = callback
}

// OnReviewFailure implements mvc.SwapUsecase.
func (s *swapUseCase) OnReviewFailure(callback func(message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onReviewFailure = callback
}

// Shutdown implements mvc.SwapUsecase.
func (s *swapUseCase) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
	})
}

// resetToSeededLocked returns the session to the connect-time state and
// invalidates every in-flight asynchronous result.
func (s *swapUseCase) resetToSeededLocked() {
	s.cancelDebounceLocked()

	s.quoteSeq++
	s.costSeq++
	s.quotePending = false
	s.costPending = false

	s.state = s.seeded
	s.inputs = domain.InputsState{}
	s.active = domain.SideSell
	s.review = false
	s.prevLabel = domain.ButtonLabelReview
	s.prevPreview = ""
	s.cost = nil
	s.trade = domain.Trade{State: domain.TradeStateNone}
	s.lastError = ""
}

func (s *swapUseCase) setBalancesLocked(balances []domain.Balance) {
	s.balances = make(map[domain.AssetID]osmomath.Int, len(balances))
	for _, balance := range balances {
		s.balances[balance.AssetID] = balance.Amount
	}
}

// refreshBalances re-fetches wallet balances, clearing the pending flag
// regardless of outcome.
func (s *swapUseCase) refreshBalances() {
	balances, err := s.chain.GetBalances(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.balancesPending = false
	if err != nil {
		s.logger.Error("failed to refresh balances", zap.Error(err))
		return
	}
	s.setBalancesLocked(balances)
}

// decimalsLocked returns the precision of the asset on the given side,
// zero when the asset is unselected or unknown to the registry.
func (s *swapUseCase) decimalsLocked(side domain.Side) int {
	assetID := s.state.Get(side).AssetID
	if !assetID.IsSet() {
		return 0
	}
	meta, err := s.tokens.GetMetadataByAssetID(assetID)
	if err != nil {
		return 0
	}
	return meta.Precision
}

// amountsMissingLocked reports whether either committed amount is absent or
// non-positive.
func (s *swapUseCase) amountsMissingLocked() bool {
	return !isPositiveAmount(s.state.Sell.Amount) || !isPositiveAmount(s.state.Buy.Amount)
}

func isPositiveAmount(amount string) bool {
	if amount == "" {
		return false
	}
	value, err := strconv.ParseFloat(amount, 64)
	return err == nil && value > 0
}
