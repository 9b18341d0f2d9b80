package config

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// Database connection defaults
const (
	DefaultDBHost = "localhost"
	DefaultDBPort = 5432
)
