//go:build unit
// +build unit

package recipes

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipeQueryDefaults(t *testing.T) {
	userID := uuid.New().String()
	query := NewRecipeQuery(userID)

	assert.Equal(t, userID, query.UserID)
	assert.Equal(t, SortByCreatedAt, query.SortBy)
	assert.Equal(t, SortOrderDesc, query.SortOrder)
	assert.Zero(t, query.Limit)
	require.NoError(t, query.Validate())
}

func TestRecipeQueryValidation(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name      string
		mutate    func(*RecipeQuery)
		shouldErr bool
	}{
		{"defaults", func(q *RecipeQuery) {}, false},
		{"tag filter", func(q *RecipeQuery) { q.TagIDs = []string{uuid.New().String()} }, false},
		{"malformed tag id", func(q *RecipeQuery) { q.TagIDs = []string{"1"} }, true},
		{"malformed ingredient id", func(q *RecipeQuery) { q.IngredientIDs = []string{"x"} }, true},
		{"missing owner", func(q *RecipeQuery) { q.UserID = "" }, true},
		{"unknown sort field", func(q *RecipeQuery) { q.SortBy = "rating" }, true},
		{"unknown sort order", func(q *RecipeQuery) { q.SortOrder = "sideways" }, true},
		{"negative offset", func(q *RecipeQuery) { q.Offset = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := NewRecipeQuery(userID)
			tt.mutate(query)

			err := query.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAttributeQueryDefaults(t *testing.T) {
	userID := uuid.New().String()

	tagQuery := NewTagQuery(userID)
	assert.Equal(t, SortByName, tagQuery.SortBy)
	assert.Equal(t, SortOrderDesc, tagQuery.SortOrder)
	assert.False(t, tagQuery.AssignedOnly)
	require.NoError(t, tagQuery.Validate())

	ingredientQuery := NewIngredientQuery(userID)
	assert.Equal(t, SortByCreatedAt, ingredientQuery.SortBy)
	assert.Equal(t, SortOrderDesc, ingredientQuery.SortOrder)
	require.NoError(t, ingredientQuery.Validate())
}

func TestAttributeQueryValidation(t *testing.T) {
	query := NewTagQuery(uuid.New().String())
	query.SortBy = "price"

	require.Error(t, query.Validate())
}
