package ratelimit

import (
	"context"
	"time"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// redisLimiter struct that implements the RateLimiter interface with a
// fixed window shared across replicas through Redis
type redisLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	logger   logger.Logger
}

// NewRedisLimiter creates and returns a new instance of redisLimiter
func NewRedisLimiter(settings *config.RateLimitSettings, logger logger.Logger) (RateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr: settings.RedisAddr,
	})

	return &redisLimiter{
		client:   client,
		requests: settings.Requests,
		window:   time.Duration(settings.WindowSeconds) * time.Second,
		logger:   logger,
	}, nil
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "ratelimit:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("Rate limiter unavailable, allowing request: ", err)
		return true, nil
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set rate limit window: ", err)
		}
	}

	return count <= int64(l.requests), nil
}
