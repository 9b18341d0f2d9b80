package recipes

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// maxPrice bounds the price field to five digits with two decimal places.
var maxPrice = decimal.NewFromInt(1000)

// Recipe entity. Tags and Ingredients hold the attached attribute sets;
// on create/update they may arrive carrying names only, with IDs resolved
// during persistence.
type Recipe struct {
	ID          string `validate:"required,uuid4"`
	UserID      string `validate:"required,uuid4"`
	Title       string `validate:"required,min=1,max=255"`
	TimeMinutes int    `validate:"min=0"`
	Price       decimal.Decimal
	Description string
	Link        string       `validate:"omitempty,max=255"`
	ImagePath   *string      `validate:"omitempty,max=500"`
	Tags        []Tag        `validate:"omitempty,dive"`
	Ingredients []Ingredient `validate:"omitempty,dive"`
	CreatedAt   time.Time    `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Recipe struct
func (r *Recipe) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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

	if r.Price.IsNegative() {
		return fmt.Errorf("price must not be negative")
	}
	if r.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("price must be below %s", maxPrice)
	}
	if r.Price.Exponent() < -2 {
		return fmt.Errorf("price supports at most two decimal places")
	}

	return nil
}

// RecipeUpdate carries a partial update. Nil fields are left untouched; for
// the attribute sets an empty non-nil slice clears every attachment.
type RecipeUpdate struct {
	Title       *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Description *string
	Link        *string
	Tags        *[]Tag
	Ingredients *[]Ingredient
}
