package app

import (
	"context"
	"time"

	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

// Pinger abstracts a connectivity probe against the database server.
type Pinger interface {
	// Ping reports whether the database currently accepts connections.
	Ping(ctx context.Context) error
}

// DBWaiter polls the database until it accepts connections. Both binaries
// and the ops CLI block on it before touching the schema, since the
// database container typically starts alongside them.
type DBWaiter struct {
	pinger   Pinger
	interval time.Duration
	logger   logger.Logger
}

// NewDBWaiter creates a new DBWaiter probing at the given interval
func NewDBWaiter(pinger Pinger, interval time.Duration, logger logger.Logger) *DBWaiter {
	return &DBWaiter{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
}

// Wait blocks until a probe succeeds or the context ends.
func (w *DBWaiter) Wait(ctx context.Context) error {
	w.logger.Info("Waiting for database...")

	for {
		if err := w.pinger.Ping(ctx); err == nil {
			w.logger.Info("Database available!")
			return nil
		}

		w.logger.Info("Database unavailable, waiting 1 second...")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}
