//go:build unit
// +build unit

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := &config.RateLimitSettings{
		Enabled:       true,
		Requests:      3,
		WindowSeconds: 60,
	}
	limiter, err := NewMemoryLimiter(settings, logger)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := &config.RateLimitSettings{
		Enabled:       true,
		Requests:      1,
		WindowSeconds: 60,
	}
	limiter, err := NewMemoryLimiter(settings, logger)
	require.NoError(t, err)

	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_WindowExpiry(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	limiter := &memoryLimiter{
		requests: 1,
		window:   10 * time.Millisecond,
		buckets:  make(map[string]*bucket),
		logger:   logger,
	}

	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(20 * time.Millisecond)

	allowed, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}
