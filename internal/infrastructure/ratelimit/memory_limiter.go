package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

type bucket struct {
	count     int
	expiresAt time.Time
}

// memoryLimiter struct that implements the RateLimiter interface with a
// fixed window kept in process memory
type memoryLimiter struct {
	mu       sync.Mutex
	requests int
	window   time.Duration
	buckets  map[string]*bucket
	logger   logger.Logger
}

// NewMemoryLimiter creates and returns a new instance of memoryLimiter
func NewMemoryLimiter(settings *config.RateLimitSettings, logger logger.Logger) (RateLimiter, error) {
	return &memoryLimiter{
		requests: settings.Requests,
		window:   time.Duration(settings.WindowSeconds) * time.Second,
		buckets:  make(map[string]*bucket),
		logger:   logger,
	}, nil
}

func (l *memoryLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok || now.After(b.expiresAt) {
		l.sweep(now)
		l.buckets[key] = &bucket{count: 1, expiresAt: now.Add(l.window)}
		return true, nil
	}

	if b.count >= l.requests {
		return false, nil
	}

	b.count++
	return true, nil
}

// sweep drops expired buckets. Callers hold the mutex.
func (l *memoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.After(b.expiresAt) {
			delete(l.buckets, key)
		}
	}
}
