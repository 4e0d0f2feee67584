package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
	"github.com/mirador-labs/swapd/util"
)

const quoteEndpoint = "/v1/quote"

var _ domain.RouteOracle = &RoutingClient{}

// RoutingClient resolves quotes against the routing backend over HTTP.
type RoutingClient struct {
	client *http.Client
	url    string
	tokens mvc.TokensUsecase
}

// NewRoutingClient creates a route oracle backed by the routing service at
// the configured URL.
func NewRoutingClient(config *domain.RoutingConfig, tokens mvc.TokensUsecase) *RoutingClient {
	return &RoutingClient{
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		url:    config.BackendURL,
		tokens: tokens,
	}
}

type quoteRequest struct {
	SellAssetID domain.AssetID `json:"sell_asset_id"`
	BuyAssetID  domain.AssetID `json:"buy_asset_id"`
	// Amount is the active-side amount in base units.
	Amount string `json:"amount"`
	// Exact is "in" when the sell side drives the quote, "out" otherwise.
	Exact string `json:"exact"`
}

type hopResponse struct {
	PoolID   string         `json:"pool_id"`
	AssetIn  domain.AssetID `json:"asset_in"`
	AssetOut domain.AssetID `json:"asset_out"`
	Stable   bool           `json:"stable"`
}

type quoteResponse struct {
	Route     []hopResponse `json:"route"`
	AmountIn  string        `json:"amount_in"`
	AmountOut string        `json:"amount_out"`
}

// Quote implements domain.RouteOracle.
func (c *RoutingClient) Quote(ctx context.Context, state domain.SwapState, activeSide domain.Side) (domain.Trade, error) {
	activeLeg := state.Get(activeSide)

	meta, err := c.tokens.GetMetadataByAssetID(activeLeg.AssetID)
	if err != nil {
		return domain.Trade{}, err
	}

	amount, err := domain.ParseUnits(activeLeg.Amount, meta.Precision)
	if err != nil {
		return domain.Trade{}, err
	}

	exact := "in"
	if activeSide == domain.SideBuy {
		exact = "out"
	}

	request := quoteRequest{
		SellAssetID: state.Sell.AssetID,
		BuyAssetID:  state.Buy.AssetID,
		Amount:      amount.String(),
		Exact:       exact,
	}

	response, err := util.Post[quoteResponse](ctx, c.client, c.url, quoteEndpoint, request)
	if err != nil {
		// The backend reports an unroutable pair as not found; that is a
		// trade state rather than a failure.
		var statusErr *util.HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.Trade{State: domain.TradeStateNoRouteFound}, nil
		}
		return domain.Trade{}, err
	}

	if len(response.Route) == 0 {
		return domain.Trade{State: domain.TradeStateNoRouteFound}, nil
	}

	amountIn, ok := osmomath.NewIntFromString(response.AmountIn)
	if !ok {
		return domain.Trade{}, fmt.Errorf("malformed amount_in (%s) in quote response", response.AmountIn)
	}
	amountOut, ok := osmomath.NewIntFromString(response.AmountOut)
	if !ok {
		return domain.Trade{}, fmt.Errorf("malformed amount_out (%s) in quote response", response.AmountOut)
	}

	route := make([]domain.Hop, 0, len(response.Route))
	for _, hop := range response.Route {
		route = append(route, domain.Hop{
			PoolID:   hop.PoolID,
			AssetIn:  hop.AssetIn,
			AssetOut: hop.AssetOut,
			Stable:   hop.Stable,
		})
	}

	return domain.Trade{
		Route:     route,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		State:     domain.TradeStateValid,
	}, nil
}
