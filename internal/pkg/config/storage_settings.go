package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// StorageSettings locates the shared volume directories: where uploaded
// media lands, where collected static assets land, and where the collectable
// source assets live.
type StorageSettings struct {
	MediaRoot    string `mapstructure:"media_root" validate:"required"`
	StaticRoot   string `mapstructure:"static_root" validate:"required"`
	StaticSource string `mapstructure:"static_source"`
}

// Validate checks that all fields in StorageSettings are valid
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	return nil
}
