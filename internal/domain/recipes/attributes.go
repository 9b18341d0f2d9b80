package recipes

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tag entity. IDs are optional so freshly named tags can flow through
// recipe payloads before persistence assigns them.
type Tag struct {
	ID     string `validate:"omitempty,uuid4"`
	UserID string `validate:"omitempty,uuid4"`
	Name   string `validate:"required,min=1,max=255"`
}

// Validate for validating Tag struct
func (t *Tag) Validate() error {
	return validateAttribute(t)
}

// Ingredient entity, owned and resolved exactly like Tag.
type Ingredient struct {
	ID     string `validate:"omitempty,uuid4"`
	UserID string `validate:"omitempty,uuid4"`
	Name   string `validate:"required,min=1,max=255"`
}

// Validate for validating Ingredient struct
func (i *Ingredient) Validate() error {
	return validateAttribute(i)
}

func validateAttribute(v interface{}) error {
	validate := validator.New()

	err := validate.Struct(v)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
