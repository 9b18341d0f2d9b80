//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagService_List(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	_, err := services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Vegan")
	require.NoError(t, err)
	_, err = services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Dessert")
	require.NoError(t, err)

	tagList, err := services.TagService.List(ctx, recipes.NewTagQuery(user.ID))
	require.NoError(t, err)
	require.Len(t, tagList, 2)
	assert.Equal(t, "Vegan", tagList[0].Name)
}

func TestTagService_UpdateByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	tag, err := services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Afters")
	require.NoError(t, err)

	renamedTag, err := services.TagService.UpdateByID(ctx, user.ID, tag.ID, "Dessert")
	require.NoError(t, err)
	assert.Equal(t, "Dessert", renamedTag.Name)
}

func TestTagService_UpdateByID_RejectsEmptyName(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	tag, err := services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Vegan")
	require.NoError(t, err)

	_, err = services.TagService.UpdateByID(ctx, user.ID, tag.ID, "")
	require.Error(t, err)
}

func TestTagService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	tag, err := services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Vegan")
	require.NoError(t, err)

	require.NoError(t, services.TagService.DeleteByID(ctx, user.ID, tag.ID))

	tagList, err := services.TagService.List(ctx, recipes.NewTagQuery(user.ID))
	require.NoError(t, err)
	assert.Len(t, tagList, 0)
}

func TestIngredientService_UpdateByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	ingredient, err := services.DBContext.IngredientRepo.GetOrCreate(ctx, user.ID, "Cabage")
	require.NoError(t, err)

	renamedIngredient, err := services.IngredientService.UpdateByID(ctx, user.ID, ingredient.ID, "Cabbage")
	require.NoError(t, err)
	assert.Equal(t, "Cabbage", renamedIngredient.Name)
}

func TestIngredientService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	ingredient, err := services.DBContext.IngredientRepo.GetOrCreate(ctx, user.ID, "Cucumber")
	require.NoError(t, err)

	require.NoError(t, services.IngredientService.DeleteByID(ctx, user.ID, ingredient.ID))

	ingredientList, err := services.IngredientService.List(ctx, recipes.NewIngredientQuery(user.ID))
	require.NoError(t, err)
	assert.Len(t, ingredientList, 0)
}
