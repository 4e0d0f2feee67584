package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mvc"
	"github.com/mirador-labs/swapd/log"
)

// SwapHandler represent the httphandler for the swap session
type SwapHandler struct {
	SUsecase mvc.SwapUsecase
	logger   log.Logger
}

const swapResource = "/swap"

func formatSwapResource(resource string) string {
	return swapResource + resource
}

// NewSwapHandler will initialize the swap session resources endpoint
func NewSwapHandler(e *echo.Echo, su mvc.SwapUsecase, logger log.Logger) {
	handler := &SwapHandler{
		SUsecase: su,
		logger:   logger,
	}
	e.GET(formatSwapResource("/state"), handler.GetState)
	e.POST(formatSwapResource("/connect"), handler.Connect)
	e.POST(formatSwapResource("/disconnect"), handler.Disconnect)
	e.POST(formatSwapResource("/input"), handler.TypeAmount)
	e.POST(formatSwapResource("/asset"), handler.SelectAsset)
	e.POST(formatSwapResource("/switch"), handler.SwapAssets)
	e.POST(formatSwapResource("/max"), handler.SetMax)
	e.POST(formatSwapResource("/slippage"), handler.SetSlippage)
	e.POST(formatSwapResource("/button"), handler.PressButton)
}

// TypeAmountRequest is the request body for the input endpoint.
type TypeAmountRequest struct {
	Side   string `json:"side"`
	Amount string `json:"amount"`
}

// SelectAssetRequest is the request body for the asset endpoint.
type SelectAssetRequest struct {
	Side    string         `json:"side"`
	AssetID domain.AssetID `json:"asset_id"`
}

// SetMaxRequest is the request body for the max endpoint.
type SetMaxRequest struct {
	Side string `json:"side"`
}

// SetSlippageRequest is the request body for the slippage endpoint.
type SetSlippageRequest struct {
	Bps uint64 `json:"bps"`
}

// GetState returns the full session view model.
func (a *SwapHandler) GetState(c echo.Context) error {
	viewModel := a.SUsecase.ViewModel(c.Request().Context())
	return c.JSON(http.StatusOK, viewModel)
}

// Connect starts the session: validates the network, loads the persisted
// asset pair and fetches balances.
func (a *SwapHandler) Connect(c echo.Context) error {
	if err := a.SUsecase.Connect(c.Request().Context()); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	return a.GetState(c)
}

// Disconnect resets the session to the seeded state.
func (a *SwapHandler) Disconnect(c echo.Context) error {
	a.SUsecase.Disconnect()
	return a.GetState(c)
}

// TypeAmount applies a keystroke on one side of the form.
func (a *SwapHandler) TypeAmount(c echo.Context) error {
	var req TypeAmountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := a.SUsecase.TypeAmount(side, req.Amount); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	return a.GetState(c)
}

// SelectAsset sets the asset on one side of the form.
func (a *SwapHandler) SelectAsset(c echo.Context) error {
	var req SelectAssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if !req.AssetID.IsSet() {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: domain.ErrBadParamInput.Error()})
	}

	if err := a.SUsecase.SelectAsset(side, req.AssetID); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	return a.GetState(c)
}

// SwapAssets exchanges the two sides of the form.
func (a *SwapHandler) SwapAssets(c echo.Context) error {
	a.SUsecase.SwapAssets()
	return a.GetState(c)
}

// SetMax sets a side's amount to the spendable balance.
func (a *SwapHandler) SetMax(c echo.Context) error {
	var req SetMaxRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	side, err := domain.ParseSide(req.Side)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := a.SUsecase.SetMax(side); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	return a.GetState(c)
}

// SetSlippage updates the slippage tolerance.
func (a *SwapHandler) SetSlippage(c echo.Context) error {
	var req SetSlippageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	a.SUsecase.SetSlippage(req.Bps)
	return a.GetState(c)
}

// PressButton advances the two-phase review and swap flow.
func (a *SwapHandler) PressButton(c echo.Context) error {
	if err := a.SUsecase.PressButton(c.Request().Context()); err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}
	return a.GetState(c)
}
