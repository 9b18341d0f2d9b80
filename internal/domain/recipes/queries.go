package recipes

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sort field constants accepted by the list queries.
const (
	SortByCreatedAt   = "created_at"
	SortByTitle       = "title"
	SortByTimeMinutes = "time_minutes"
	SortByPrice       = "price"
	SortByName        = "name"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// RecipeQuery filters and orders a recipe listing. Attribute ID slices
// select recipes attached to any of the given tags/ingredients.
type RecipeQuery struct {
	UserID        string   `validate:"required,uuid4"`
	TagIDs        []string `validate:"omitempty,dive,uuid4"`
	IngredientIDs []string `validate:"omitempty,dive,uuid4"`
	SortBy        string   `validate:"omitempty,oneof=created_at title time_minutes price"`
	SortOrder     string   `validate:"omitempty,oneof=asc desc"`
	Limit         int      `validate:"min=0"`
	Offset        int      `validate:"min=0"`
}

// NewRecipeQuery returns a query scoped to one owner, newest first.
func NewRecipeQuery(userID string) *RecipeQuery {
	return &RecipeQuery{
		UserID:    userID,
		SortBy:    SortByCreatedAt,
		SortOrder: SortOrderDesc,
	}
}

// Validate for validating RecipeQuery struct
func (q *RecipeQuery) Validate() error {
	return validateQuery(q)
}

// AttributeQuery filters and orders tag/ingredient listings. AssignedOnly
// restricts results to attributes attached to at least one recipe.
type AttributeQuery struct {
	UserID       string `validate:"required,uuid4"`
	AssignedOnly bool
	SortBy       string `validate:"omitempty,oneof=name created_at"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
	Limit        int    `validate:"min=0"`
	Offset       int    `validate:"min=0"`
}

// NewTagQuery returns a tag listing query, name-descending.
func NewTagQuery(userID string) *AttributeQuery {
	return &AttributeQuery{
		UserID:    userID,
		SortBy:    SortByName,
		SortOrder: SortOrderDesc,
	}
}

// NewIngredientQuery returns an ingredient listing query, most recent first.
func NewIngredientQuery(userID string) *AttributeQuery {
	return &AttributeQuery{
		UserID:    userID,
		SortBy:    SortByCreatedAt,
		SortOrder: SortOrderDesc,
	}
}

// Validate for validating AttributeQuery struct
func (q *AttributeQuery) Validate() error {
	return validateQuery(q)
}

func validateQuery(v interface{}) error {
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
