package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
	"github.com/mirador-labs/swapd/util"
)

const (
	chainIDEndpoint  = "/v1/chain"
	balancesEndpoint = "/v1/accounts/%s/balances"
	estimateEndpoint = "/v1/swap/estimate"
	submitEndpoint   = "/v1/tx/submit"
)

var _ domain.ChainClient = &ChainClient{}

// ChainClient talks to the node gateway on behalf of the session wallet.
type ChainClient struct {
	client        *http.Client
	url           string
	walletAddress string
	tokens        mvc.TokensUsecase
}

// NewChainClient creates a chain client against the configured node gateway.
func NewChainClient(config *domain.ChainConfig, tokens mvc.TokensUsecase) *ChainClient {
	return &ChainClient{
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		url:           config.NodeURL,
		walletAddress: config.WalletAddress,
		tokens:        tokens,
	}
}

type chainResponse struct {
	ChainID string `json:"chain_id"`
}

type balanceResponse struct {
	AssetID domain.AssetID `json:"asset_id"`
	Amount  string         `json:"amount"`
}

type estimateRequest struct {
	WalletAddress string         `json:"wallet_address"`
	SellAssetID   domain.AssetID `json:"sell_asset_id"`
	BuyAssetID    domain.AssetID `json:"buy_asset_id"`
	// AmountIn and MinAmountOut are in base units. MinAmountOut carries the
	// slippage tolerance already applied.
	AmountIn     string       `json:"amount_in"`
	MinAmountOut string       `json:"min_amount_out"`
	SlippageBps  uint64       `json:"slippage_bps"`
	Route        []domain.Hop `json:"route"`
}

type estimateResponse struct {
	TxBlob  []byte `json:"tx_blob"`
	GasCost string `json:"gas_cost"`
}

type submitRequest struct {
	TxBlob []byte `json:"tx_blob"`
}

type submitResponse struct {
	ID string `json:"id"`
}

// GetChainID implements domain.ChainClient.
func (c *ChainClient) GetChainID(ctx context.Context) (string, error) {
	response, err := util.Get[chainResponse](ctx, c.client, c.url, chainIDEndpoint)
	if err != nil {
		return "", err
	}
	return response.ChainID, nil
}

// GetBalances implements domain.ChainClient.
func (c *ChainClient) GetBalances(ctx context.Context) ([]domain.Balance, error) {
	endpoint := fmt.Sprintf(balancesEndpoint, c.walletAddress)

	response, err := util.Get[[]balanceResponse](ctx, c.client, c.url, endpoint)
	if err != nil {
		return nil, err
	}

	balances := make([]domain.Balance, 0, len(*response))
	for _, entry := range *response {
		amount, ok := osmomath.NewIntFromString(entry.Amount)
		if !ok {
			return nil, fmt.Errorf("malformed balance amount (%s) for asset (%s)", entry.Amount, entry.AssetID)
		}
		balances = append(balances, domain.Balance{AssetID: entry.AssetID, Amount: amount})
	}
	return balances, nil
}

// EstimateCost implements domain.ChainClient.
func (c *ChainClient) EstimateCost(ctx context.Context, state domain.SwapState, slippageBps uint64, route []domain.Hop) ([]byte, osmomath.Int, error) {
	amountIn, err := c.baseUnits(state.Sell)
	if err != nil {
		return nil, osmomath.Int{}, err
	}
	amountOut, err := c.baseUnits(state.Buy)
	if err != nil {
		return nil, osmomath.Int{}, err
	}

	// min out = out * (10000 - slippage) / 10000
	minAmountOut := amountOut.Mul(osmomath.NewIntFromUint64(10_000 - slippageBps)).Quo(osmomath.NewInt(10_000))

	request := estimateRequest{
		WalletAddress: c.walletAddress,
		SellAssetID:   state.Sell.AssetID,
		BuyAssetID:    state.Buy.AssetID,
		AmountIn:      amountIn.String(),
		MinAmountOut:  minAmountOut.String(),
		SlippageBps:   slippageBps,
		Route:         route,
	}

	response, err := util.Post[estimateResponse](ctx, c.client, c.url, estimateEndpoint, request)
	if err != nil {
		return nil, osmomath.Int{}, asSubmitError(err)
	}

	gasCost, ok := osmomath.NewIntFromString(response.GasCost)
	if !ok {
		return nil, osmomath.Int{}, fmt.Errorf("malformed gas cost (%s) in estimate response", response.GasCost)
	}

	return response.TxBlob, gasCost, nil
}

// Submit implements domain.ChainClient.
func (c *ChainClient) Submit(ctx context.Context, txBlob []byte) (domain.SwapResult, error) {
	response, err := util.Post[submitResponse](ctx, c.client, c.url, submitEndpoint, submitRequest{TxBlob: txBlob})
	if err != nil {
		return domain.SwapResult{}, asSubmitError(err)
	}
	return domain.SwapResult{ID: response.ID}, nil
}

func (c *ChainClient) baseUnits(leg domain.SwapSide) (osmomath.Int, error) {
	meta, err := c.tokens.GetMetadataByAssetID(leg.AssetID)
	if err != nil {
		return osmomath.Int{}, err
	}
	return domain.ParseUnits(leg.Amount, meta.Precision)
}

// asSubmitError converts a structured gateway failure body into a
// domain.SubmitError so the engine can tell a user decline or a slippage
// revert from transport errors.
func asSubmitError(err error) error {
	var statusErr *util.HTTPStatusError
	if !errors.As(err, &statusErr) {
		return err
	}

	var submitErr domain.SubmitError
	if jsonErr := json.Unmarshal(statusErr.Body, &submitErr); jsonErr != nil || submitErr.Code == "" {
		return err
	}
	return submitErr
}
