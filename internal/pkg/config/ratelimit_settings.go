package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings configures the limiter guarding the credential
// endpoints. With no Redis address the limiter runs on process memory.
type RateLimitSettings struct {
	Enabled       bool   `mapstructure:"enabled"`
	RedisAddr     string `mapstructure:"redis_addr"`
	Requests      int    `mapstructure:"requests"`
	WindowSeconds int    `mapstructure:"window_seconds"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}

	if s.Enabled {
		if s.Requests < 1 {
			return fmt.Errorf("requests must be at least 1")
		}
		if s.WindowSeconds < 1 {
			return fmt.Errorf("window must be at least 1 second")
		}
	}

	return nil
}
