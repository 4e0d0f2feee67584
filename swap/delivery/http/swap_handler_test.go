package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mocks"
	swapdelivery "github.com/mirador-labs/swapd/swap/delivery/http"
)

type SwapHandlerSuite struct {
	suite.Suite
}

func TestSwapHandlerSuite(t *testing.T) {
	suite.Run(t, new(SwapHandlerSuite))
}

func (s *SwapHandlerSuite) request(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(echo.POST, "/", nil)
	} else {
		req = httptest.NewRequest(echo.POST, "/", strings.NewReader(body))
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func (s *SwapHandlerSuite) TestGetState() {
	handler := &swapdelivery.SwapHandler{
		SUsecase: &mocks.SwapUsecaseMock{
			ViewModelFunc: func(ctx context.Context) domain.SwapViewModel {
				return domain.SwapViewModel{
					Connected:  true,
					ActiveSide: "sell",
					TradeState: "valid",
					Button:     domain.ButtonState{Label: domain.ButtonLabelReview, Enabled: true},
				}
			},
		},
	}

	c, rec := s.request("")

	s.Require().NoError(handler.GetState(c))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), `"connected":true`)
	s.Require().Contains(rec.Body.String(), `"label":"Review"`)
}

func (s *SwapHandlerSuite) TestTypeAmount() {
	testcases := []struct {
		name               string
		body               string
		typeAmountErr      error
		expectedStatusCode int
		expectedSide       domain.Side
		expectedAmount     string
	}{
		{
			name:               "valid sell input",
			body:               `{"side": "sell", "amount": "1.5"}`,
			expectedStatusCode: http.StatusOK,
			expectedSide:       domain.SideSell,
			expectedAmount:     "1.5",
		},
		{
			name:               "valid buy input",
			body:               `{"side": "buy", "amount": "42"}`,
			expectedStatusCode: http.StatusOK,
			expectedSide:       domain.SideBuy,
			expectedAmount:     "42",
		},
		{
			name:               "invalid side",
			body:               `{"side": "neither", "amount": "1"}`,
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "not connected",
			body:               `{"side": "sell", "amount": "1"}`,
			typeAmountErr:      domain.ErrNotConnected,
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tc := range testcases {
		s.Run(tc.name, func() {
			var gotSide domain.Side
			var gotAmount string

			handler := &swapdelivery.SwapHandler{
				SUsecase: &mocks.SwapUsecaseMock{
					TypeAmountFunc: func(side domain.Side, rawAmount string) error {
						gotSide = side
						gotAmount = rawAmount
						return tc.typeAmountErr
					},
					ViewModelFunc: func(ctx context.Context) domain.SwapViewModel {
						return domain.SwapViewModel{}
					},
				},
			}

			c, rec := s.request(tc.body)

			s.Require().NoError(handler.TypeAmount(c))
			s.Require().Equal(tc.expectedStatusCode, rec.Code)

			if tc.expectedStatusCode == http.StatusOK {
				s.Require().Equal(tc.expectedSide, gotSide)
				s.Require().Equal(tc.expectedAmount, gotAmount)
			}
		})
	}
}

func (s *SwapHandlerSuite) TestSelectAsset() {
	var gotSide domain.Side
	var gotAsset domain.AssetID

	handler := &swapdelivery.SwapHandler{
		SUsecase: &mocks.SwapUsecaseMock{
			SelectAssetFunc: func(side domain.Side, assetID domain.AssetID) error {
				gotSide = side
				gotAsset = assetID
				return nil
			},
			ViewModelFunc: func(ctx context.Context) domain.SwapViewModel {
				return domain.SwapViewModel{}
			},
		},
	}

	c, rec := s.request(`{"side": "buy", "asset_id": "0xdeadbeef"}`)

	s.Require().NoError(handler.SelectAsset(c))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(domain.SideBuy, gotSide)
	s.Require().Equal(domain.AssetID("0xdeadbeef"), gotAsset)
}

func (s *SwapHandlerSuite) TestSelectAsset_MissingAsset() {
	handler := &swapdelivery.SwapHandler{
		SUsecase: &mocks.SwapUsecaseMock{},
	}

	c, rec := s.request(`{"side": "buy", "asset_id": ""}`)

	s.Require().NoError(handler.SelectAsset(c))
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *SwapHandlerSuite) TestSetSlippage() {
	var gotBps uint64

	handler := &swapdelivery.SwapHandler{
		SUsecase: &mocks.SwapUsecaseMock{
			SetSlippageFunc: func(bps uint64) {
				gotBps = bps
			},
			ViewModelFunc: func(ctx context.Context) domain.SwapViewModel {
				return domain.SwapViewModel{}
			},
		},
	}

	c, rec := s.request(`{"bps": 250}`)

	s.Require().NoError(handler.SetSlippage(c))
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Equal(uint64(250), gotBps)
}

func (s *SwapHandlerSuite) TestPressButton_NotConnected() {
	handler := &swapdelivery.SwapHandler{
		SUsecase: &mocks.SwapUsecaseMock{
			PressButtonFunc: func(ctx context.Context) error {
				return domain.ErrNotConnected
			},
		},
	}

	c, rec := s.request("")

	s.Require().NoError(handler.PressButton(c))
	s.Require().Equal(http.StatusConflict, rec.Code)
	s.Require().Contains(rec.Body.String(), domain.ErrNotConnected.Error())
}
