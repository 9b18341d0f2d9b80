//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence/models"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientSqliteRepository_GetOrCreate(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	createdIngredient, err := ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, TestIngredientName)
	require.NoError(t, err)
	assert.Equal(t, TestIngredientName, createdIngredient.Name)

	fetchedIngredient, err := ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, TestIngredientName)
	require.NoError(t, err)
	assert.Equal(t, createdIngredient.ID, fetchedIngredient.ID)
}

func TestIngredientSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	// Seed with explicit timestamps to pin the recency ordering
	now := time.Now().UTC()
	oldIngredient := models.IngredientModel{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      "Salt",
		CreatedAt: now.Add(-2 * time.Hour),
	}
	newIngredient := models.IngredientModel{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Name:      "Cinnamon",
		CreatedAt: now.Add(-1 * time.Hour),
	}
	require.NoError(t, ctx.DB.Create(&oldIngredient).Error)
	require.NoError(t, ctx.DB.Create(&newIngredient).Error)

	ingredientList, err := ctx.IngredientRepo.List(context.Background(), recipes.NewIngredientQuery(user.ID))
	require.NoError(t, err)
	require.Len(t, ingredientList, 2)

	// Most recently added first
	assert.Equal(t, "Cinnamon", ingredientList[0].Name)
	assert.Equal(t, "Salt", ingredientList[1].Name)
}

func TestIngredientSqliteRepository_List_AssignedOnly(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	assignedIngredient, err := ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, "Turkey")
	require.NoError(t, err)
	_, err = ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, "Apples")
	require.NoError(t, err)

	recipe := CreateTestRecipe(t, user.ID)
	require.NoError(t, ctx.RecipeRepo.Create(context.Background(), recipe))
	require.NoError(t, ctx.RecipeRepo.ReplaceIngredients(context.Background(), recipe.ID, []recipes.Ingredient{*assignedIngredient}))

	query := recipes.NewIngredientQuery(user.ID)
	query.AssignedOnly = true

	ingredientList, err := ctx.IngredientRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, ingredientList, 1)
	assert.Equal(t, "Turkey", ingredientList[0].Name)
}

func TestIngredientSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	ingredient, err := ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, "Coriandr")
	require.NoError(t, err)

	ingredient.Name = "Coriander"
	require.NoError(t, ctx.IngredientRepo.UpdateByID(context.Background(), ingredient))

	updatedIngredient, err := ctx.IngredientRepo.GetByID(context.Background(), user.ID, ingredient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coriander", updatedIngredient.Name)
}

func TestIngredientSqliteRepository_DeleteByID_DetachesFromRecipes(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t)
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	ingredient, err := ctx.IngredientRepo.GetOrCreate(context.Background(), user.ID, TestIngredientName)
	require.NoError(t, err)

	recipe := CreateTestRecipe(t, user.ID)
	require.NoError(t, ctx.RecipeRepo.Create(context.Background(), recipe))
	require.NoError(t, ctx.RecipeRepo.ReplaceIngredients(context.Background(), recipe.ID, []recipes.Ingredient{*ingredient}))

	require.NoError(t, ctx.IngredientRepo.DeleteByID(context.Background(), user.ID, ingredient.ID))

	// The cascade drops the join rows, the recipe stays
	fetchedRecipe, err := ctx.RecipeRepo.GetByID(context.Background(), user.ID, recipe.ID)
	require.NoError(t, err)
	assert.Len(t, fetchedRecipe.Ingredients, 0)
}
