package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mirador-labs/swapd/domain/cache"
)

func TestCache_SetGet(t *testing.T) {
	tests := []struct {
		name       string
		expiration time.Duration
		sleep      time.Duration

		expectFound bool
	}{
		{
			name:        "no expiration",
			expiration:  0,
			expectFound: true,
		},
		{
			name:        "not yet expired",
			expiration:  time.Minute,
			expectFound: true,
		},
		{
			name:        "expired",
			expiration:  time.Millisecond,
			sleep:       5 * time.Millisecond,
			expectFound: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := cache.New()
			c.Set("key", "value", tc.expiration)

			if tc.sleep > 0 {
				time.Sleep(tc.sleep)
			}

			value, found := c.Get("key")
			require.Equal(t, tc.expectFound, found)
			if tc.expectFound {
				require.Equal(t, "value", value)
			}
		})
	}
}

func TestCache_Delete(t *testing.T) {
	c := cache.New()

	c.Set("key", 42, 0)
	c.Delete("key")

	_, found := c.Get("key")
	require.False(t, found)

	// Deleting a missing key is a no-op.
	c.Delete("missing")
}
