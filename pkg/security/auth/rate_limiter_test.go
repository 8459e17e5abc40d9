package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRateLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Allows up to the limit then blocks", func(t *testing.T) {
		limiter := NewMemoryRateLimiter(time.Minute, 3)

		for i := 0; i < 3; i++ {
			allowed, _, _, err := limiter.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.True(t, allowed)
		}

		allowed, remaining, _, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
	})

	t.Run("Keys are independent", func(t *testing.T) {
		limiter := NewMemoryRateLimiter(time.Minute, 1)

		allowed, _, _, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, allowed)

		allowed, _, _, err = limiter.Allow(ctx, "client-b")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("Reset clears the counter", func(t *testing.T) {
		limiter := NewMemoryRateLimiter(time.Minute, 1)

		_, _, _, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		allowed, _, _, err := limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		require.False(t, allowed)

		require.NoError(t, limiter.Reset(ctx, "client-a"))

		allowed, _, _, err = limiter.Allow(ctx, "client-a")
		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("WithLimit derives an independent limiter", func(t *testing.T) {
		base := NewMemoryRateLimiter(time.Minute, 1)
		derived := base.WithLimit(5, time.Second)

		for i := 0; i < 5; i++ {
			allowed, _, _, err := derived.Allow(ctx, "client-a")
			require.NoError(t, err)
			assert.True(t, allowed)
		}
	})
}
