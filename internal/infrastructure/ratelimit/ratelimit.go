package ratelimit

import (
	"context"
	"fmt"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

// RateLimiter decides whether a key may perform another request inside the
// current window.
type RateLimiter interface {
	// Allow records an attempt for the key and reports whether it is still
	// within its budget.
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRateLimiter creates a limiter from settings: Redis-backed when an
// address is configured, otherwise process memory. A disabled limiter
// admits everything.
func NewRateLimiter(settings *config.RateLimitSettings, logger logger.Logger) (RateLimiter, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rate limit settings: %w", err)
	}

	if !settings.Enabled {
		return &noopLimiter{}, nil
	}

	if settings.RedisAddr != "" {
		return NewRedisLimiter(settings, logger)
	}
	return NewMemoryLimiter(settings, logger)
}

// noopLimiter stands in when rate limiting is switched off.
type noopLimiter struct{}

// Allow admits every request.
func (l *noopLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return true, nil
}
