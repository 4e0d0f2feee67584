package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain"
	tokensusecase "github.com/mirador-labs/swapd/tokens/usecase"
)

const (
	ethAssetID = domain.AssetID("0xf8f8b628")
	usdcAsset  = domain.AssetID("0x286c479d")
)

func TestGetMetadataByAssetID(t *testing.T) {
	tokens := tokensusecase.NewTokensUsecase(map[domain.AssetID]domain.Token{
		ethAssetID: {Symbol: "ETH", Precision: 9},
	})

	token, err := tokens.GetMetadataByAssetID(ethAssetID)
	require.NoError(t, err)
	require.Equal(t, "ETH", token.Symbol)
	require.Equal(t, 9, token.Precision)

	_, err = tokens.GetMetadataByAssetID(usdcAsset)
	require.Error(t, err)
	require.ErrorAs(t, err, &domain.AssetMetadataNotFoundError{})
}

func TestUpdateMetadata(t *testing.T) {
	tokens := tokensusecase.NewTokensUsecase(nil)

	_, err := tokens.GetMetadataByAssetID(usdcAsset)
	require.Error(t, err)

	tokens.UpdateMetadata(map[domain.AssetID]domain.Token{
		usdcAsset: {Symbol: "USDC", Precision: 6},
	})

	token, err := tokens.GetMetadataByAssetID(usdcAsset)
	require.NoError(t, err)
	require.Equal(t, "USDC", token.Symbol)

	full := tokens.GetFullTokenMetadata()
	require.Len(t, full, 1)
}
