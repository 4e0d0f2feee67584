package mvc

import (
	"github.com/mirador-labs/swapd/domain"
)

// TokensUsecase defines an interface for the tokens usecase.
type TokensUsecase interface {
	// GetMetadataByAssetID returns token metadata for a given asset.
	// Returns AssetMetadataNotFoundError if the registry has no entry.
	GetMetadataByAssetID(assetID domain.AssetID) (domain.Token, error)

	// GetFullTokenMetadata returns token metadata for all known assets.
	GetFullTokenMetadata() map[domain.AssetID]domain.Token

	// UpdateMetadata replaces the registry contents. Used by the registry
	// loader.
	UpdateMetadata(tokens map[domain.AssetID]domain.Token)
}
