package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/chain/client"
	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/domain/mocks"
)

const walletAddress = "0x9f4c1e2a"

func newClient(serverURL string) *client.ChainClient {
	tokens := &mocks.TokensUsecaseMock{
		GetMetadataByAssetIDFunc: func(assetID domain.AssetID) (domain.Token, error) {
			return domain.Token{Symbol: "TKN", Precision: 6}, nil
		},
	}
	return client.NewChainClient(&domain.ChainConfig{
		NodeURL:        serverURL,
		WalletAddress:  walletAddress,
		TimeoutSeconds: 5,
	}, tokens)
}

func TestChainClient_GetChainID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chain", r.URL.Path)
		_, _ = w.Write([]byte(`{"chain_id": "9889"}`))
	}))
	defer server.Close()

	chainID, err := newClient(server.URL).GetChainID(context.Background())
	require.NoError(t, err)
	require.Equal(t, "9889", chainID)
}

func TestChainClient_GetBalances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/accounts/"+walletAddress+"/balances", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"asset_id": "0xaaaa", "amount": "2000000"},
			{"asset_id": "0xbbbb", "amount": "5000000000"}
		]`))
	}))
	defer server.Close()

	balances, err := newClient(server.URL).GetBalances(context.Background())
	require.NoError(t, err)
	require.Len(t, balances, 2)
	require.Equal(t, domain.AssetID("0xaaaa"), balances[0].AssetID)
	require.Equal(t, "2000000", balances[0].Amount.String())
}

func TestChainClient_EstimateCost(t *testing.T) {
	state := domain.SwapState{
		Sell: domain.SwapSide{AssetID: "0xaaaa", Amount: "1.5"},
		Buy:  domain.SwapSide{AssetID: "0xbbbb", Amount: "36"},
	}
	route := []domain.Hop{{PoolID: "pool-7", AssetIn: "0xaaaa", AssetOut: "0xbbbb"}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/swap/estimate", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "1500000", body["amount_in"])
		// 36000000 minus 1% slippage.
		require.Equal(t, "35640000", body["min_amount_out"])
		require.Equal(t, walletAddress, body["wallet_address"])

		_, _ = w.Write([]byte(`{"tx_blob": "dHgtYmxvYg==", "gas_cost": "1200"}`))
	}))
	defer server.Close()

	txBlob, gasCost, err := newClient(server.URL).EstimateCost(context.Background(), state, 100, route)
	require.NoError(t, err)
	require.Equal(t, []byte("tx-blob"), txBlob)
	require.Equal(t, "1200", gasCost.String())
}

func TestChainClient_Submit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/tx/submit", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": "0xabc123"}`))
	}))
	defer server.Close()

	result, err := newClient(server.URL).Submit(context.Background(), []byte("tx-blob"))
	require.NoError(t, err)
	require.Equal(t, "0xabc123", result.ID)
}

func TestChainClient_Submit_StructuredFailure(t *testing.T) {
	testcases := []struct {
		name string
		body string

		expectedUserDeclined bool
		expectedSlippage     bool
	}{
		{
			name:                 "user declined",
			body:                 `{"code": "user_declined", "message": "user rejected the request"}`,
			expectedUserDeclined: true,
		},
		{
			name:             "slippage revert",
			body:             `{"code": "script_reverted", "message": "script reverted: Insufficient output amount"}`,
			expectedSlippage: true,
		},
		{
			name: "other revert",
			body: `{"code": "script_reverted", "message": "script reverted: unexpected storage slot"}`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnprocessableEntity)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			_, err := newClient(server.URL).Submit(context.Background(), []byte("tx-blob"))
			require.Error(t, err)

			require.Equal(t, tc.expectedUserDeclined, domain.IsUserDeclined(err))
			require.Equal(t, tc.expectedSlippage, domain.IsSlippageViolation(err))
		})
	}
}

func TestChainClient_Submit_UnstructuredFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newClient(server.URL).Submit(context.Background(), []byte("tx-blob"))
	require.Error(t, err)
	require.False(t, domain.IsUserDeclined(err))
}
