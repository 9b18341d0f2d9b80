package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// DatabaseSettings holds the connection parameters for the application
// database. For postgres the DSN is assembled from the discrete fields; for
// sqlite the DSN field carries the file path (empty means in-memory).
type DatabaseSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	DSN      string `mapstructure:"dsn"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// Additional validation for postgres connections
	if s.Type == PostgresDbType {
		if s.Host == "" {
			return fmt.Errorf("host is required for postgres")
		}
		if s.Port < 1 || s.Port > 65535 {
			return fmt.Errorf("port must be between 1 and 65535")
		}
		if s.User == "" {
			return fmt.Errorf("user is required for postgres")
		}
		if s.Name == "" {
			return fmt.Errorf("database name is required for postgres")
		}
	}

	return nil
}

// AdminDSN returns the postgres DSN without a database name, used for the
// initial connection that ensures the database exists.
func (s *DatabaseSettings) AdminDSN() string {
	if s.DSN != "" {
		return s.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s sslmode=disable",
		s.Host, s.Port, s.User, s.Password)
}
