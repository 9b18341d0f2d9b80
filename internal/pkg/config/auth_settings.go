package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the token signing secret and lifetime. The secret is
// injected via SECRET_KEY and must never be logged.
type AuthSettings struct {
	SecretKey     string `mapstructure:"secret_key" validate:"required"`
	TokenTTLHours int    `mapstructure:"token_ttl_hours" validate:"required,min=1,max=720"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}
