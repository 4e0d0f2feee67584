package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain"
	"github.com/mirador-labs/swapd/preferences"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap_preference.json")
	store := preferences.NewFileStore(path)

	// Nothing stored yet yields the zero preference.
	preference, err := store.Get()
	require.NoError(t, err)
	require.False(t, preference.Sell.IsSet())
	require.False(t, preference.Buy.IsSet())

	stored := domain.SwapPreference{Sell: "0xaaaa", Buy: "0xbbbb"}
	require.NoError(t, store.Set(stored))

	preference, err = store.Get()
	require.NoError(t, err)
	require.Equal(t, stored, preference)
}

func TestFileStore_OverwritesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swap_preference.json")
	store := preferences.NewFileStore(path)

	require.NoError(t, store.Set(domain.SwapPreference{Sell: "0xaaaa", Buy: "0xbbbb"}))
	require.NoError(t, store.Set(domain.SwapPreference{Sell: "0xbbbb", Buy: "0xcccc"}))

	preference, err := store.Get()
	require.NoError(t, err)
	require.Equal(t, domain.AssetID("0xbbbb"), preference.Sell)
	require.Equal(t, domain.AssetID("0xcccc"), preference.Buy)
}
