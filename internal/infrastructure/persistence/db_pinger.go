package persistence

import (
	"context"

	"github.com/Renz00/recipe-vault/internal/pkg/config"
)

// DBPinger probes the configured database server. Each probe opens a fresh
// connection so a restarting server is observed accurately.
type DBPinger struct {
	settings config.DatabaseSettings
}

// NewDBPinger creates a new DBPinger for the given settings
func NewDBPinger(settings config.DatabaseSettings) *DBPinger {
	return &DBPinger{settings: settings}
}

// Ping reports whether the database currently accepts connections.
func (p *DBPinger) Ping(ctx context.Context) error {
	db, err := NewDBConnection(p.settings)
	if err != nil {
		return err
	}
	defer func() {
		_ = CloseDB(db)
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
