//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"
	"github.com/shopspring/decimal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAccount(t *testing.T, services *TestServices) *users.User {
	t.Helper()
	user, err := services.AccountService.Create(context.Background(), TestAccountEmail, TestAccountName, TestAccountPassword)
	require.NoError(t, err)
	return user
}

func sampleRecipe(userID string) *recipes.Recipe {
	return &recipes.Recipe{
		UserID:      userID,
		Title:       "Avocado lime cheesecake",
		TimeMinutes: 60,
		Price:       decimal.RequireFromString("20.00"),
	}
}

func TestRecipeCatalogService_Create(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	recipe := sampleRecipe(user.ID)
	recipe.Tags = []recipes.Tag{{Name: "Dessert"}, {Name: "Vegan"}}
	recipe.Ingredients = []recipes.Ingredient{{Name: "Avocado"}, {Name: "Lime"}}

	createdRecipe, err := services.CatalogService.Create(ctx, recipe)
	require.NoError(t, err)

	assert.NotEmpty(t, createdRecipe.ID)
	assert.Equal(t, "Avocado lime cheesecake", createdRecipe.Title)
	assert.Len(t, createdRecipe.Tags, 2)
	assert.Len(t, createdRecipe.Ingredients, 2)

	// The attributes now exist as the user's own
	tagList, err := services.TagService.List(ctx, recipes.NewTagQuery(user.ID))
	require.NoError(t, err)
	assert.Len(t, tagList, 2)
}

func TestRecipeCatalogService_Create_ReusesExistingAttributes(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	existingTag, err := services.DBContext.TagRepo.GetOrCreate(ctx, user.ID, "Dessert")
	require.NoError(t, err)

	recipe := sampleRecipe(user.ID)
	recipe.Tags = []recipes.Tag{{Name: "Dessert"}}

	createdRecipe, err := services.CatalogService.Create(ctx, recipe)
	require.NoError(t, err)

	require.Len(t, createdRecipe.Tags, 1)
	assert.Equal(t, existingTag.ID, createdRecipe.Tags[0].ID)

	tagList, err := services.TagService.List(ctx, recipes.NewTagQuery(user.ID))
	require.NoError(t, err)
	assert.Len(t, tagList, 1)
}

func TestRecipeCatalogService_Create_InvalidPrice(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	user := createAccount(t, services)

	recipe := sampleRecipe(user.ID)
	recipe.Price = decimal.RequireFromString("5.255")

	_, err := services.CatalogService.Create(context.Background(), recipe)
	require.Error(t, err)
}

func TestRecipeCatalogService_UpdateByID_PartialUpdate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	newTitle := "Chocolate cheesecake"
	updatedRecipe, err := services.CatalogService.UpdateByID(ctx, user.ID, createdRecipe.ID, &recipes.RecipeUpdate{
		Title: &newTitle,
	})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updatedRecipe.Title)
	assert.Equal(t, createdRecipe.TimeMinutes, updatedRecipe.TimeMinutes)
	assert.True(t, createdRecipe.Price.Equal(updatedRecipe.Price))
}

func TestRecipeCatalogService_UpdateByID_AttributeSets(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	recipe := sampleRecipe(user.ID)
	recipe.Tags = []recipes.Tag{{Name: "Dessert"}}
	createdRecipe, err := services.CatalogService.Create(ctx, recipe)
	require.NoError(t, err)
	require.Len(t, createdRecipe.Tags, 1)

	// A nil set leaves the attachments alone
	newTitle := "Renamed"
	updatedRecipe, err := services.CatalogService.UpdateByID(ctx, user.ID, createdRecipe.ID, &recipes.RecipeUpdate{
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Len(t, updatedRecipe.Tags, 1)

	// A fresh set replaces the attachments
	newTags := []recipes.Tag{{Name: "Vegan"}}
	updatedRecipe, err = services.CatalogService.UpdateByID(ctx, user.ID, createdRecipe.ID, &recipes.RecipeUpdate{
		Tags: &newTags,
	})
	require.NoError(t, err)
	require.Len(t, updatedRecipe.Tags, 1)
	assert.Equal(t, "Vegan", updatedRecipe.Tags[0].Name)

	// An empty set clears the attachments
	emptyTags := []recipes.Tag{}
	updatedRecipe, err = services.CatalogService.UpdateByID(ctx, user.ID, createdRecipe.ID, &recipes.RecipeUpdate{
		Tags: &emptyTags,
	})
	require.NoError(t, err)
	assert.Len(t, updatedRecipe.Tags, 0)

	// Detached tags still exist for the user
	tagList, err := services.TagService.List(ctx, recipes.NewTagQuery(user.ID))
	require.NoError(t, err)
	assert.Len(t, tagList, 2)
}

func TestRecipeCatalogService_UpdateByID_OtherUsersRecipe(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	otherUser, err := services.AccountService.Create(ctx, "other@example.com", "Other", TestAccountPassword)
	require.NoError(t, err)

	newTitle := "Hijacked"
	_, err = services.CatalogService.UpdateByID(ctx, otherUser.ID, createdRecipe.ID, &recipes.RecipeUpdate{
		Title: &newTitle,
	})
	assert.ErrorIs(t, err, recipes.ErrNotFound)
}

func TestRecipeCatalogService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	require.NoError(t, services.CatalogService.DeleteByID(ctx, user.ID, createdRecipe.ID))

	_, err = services.CatalogService.GetByID(ctx, user.ID, createdRecipe.ID)
	assert.ErrorIs(t, err, recipes.ErrNotFound)
}

func TestRecipeImageService_UploadImage(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	fileHeader := testutil.CreateFileHeader(t, "photo.png", testutil.PNGImageBytes())

	updatedRecipe, err := services.ImageService.UploadImage(ctx, user.ID, createdRecipe.ID, fileHeader)
	require.NoError(t, err)
	require.NotNil(t, updatedRecipe.ImagePath)

	imagePath := *updatedRecipe.ImagePath
	assert.Contains(t, imagePath, "uploads/recipe/")
	assert.Equal(t, ".png", filepath.Ext(imagePath))

	_, err = os.Stat(filepath.Join(services.MediaRoot, imagePath))
	assert.NoError(t, err)
}

func TestRecipeImageService_UploadImage_ReplacesPrevious(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	firstHeader := testutil.CreateFileHeader(t, "first.png", testutil.PNGImageBytes())
	firstUpload, err := services.ImageService.UploadImage(ctx, user.ID, createdRecipe.ID, firstHeader)
	require.NoError(t, err)
	firstPath := *firstUpload.ImagePath

	secondHeader := testutil.CreateFileHeader(t, "second.png", testutil.PNGImageBytes())
	secondUpload, err := services.ImageService.UploadImage(ctx, user.ID, createdRecipe.ID, secondHeader)
	require.NoError(t, err)
	secondPath := *secondUpload.ImagePath

	assert.NotEqual(t, firstPath, secondPath)

	_, err = os.Stat(filepath.Join(services.MediaRoot, firstPath))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(services.MediaRoot, secondPath))
	assert.NoError(t, err)
}

func TestRecipeImageService_UploadImage_RejectsNonImage(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	fileHeader := testutil.CreateFileHeader(t, "notanimage.txt", []byte("plain text"))

	_, err = services.ImageService.UploadImage(ctx, user.ID, createdRecipe.ID, fileHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, recipes.ErrNotAnImage)

	fetchedRecipe, err := services.CatalogService.GetByID(ctx, user.ID, createdRecipe.ID)
	require.NoError(t, err)
	assert.Nil(t, fetchedRecipe.ImagePath)
}

func TestRecipeImageService_UploadImage_OtherUsersRecipe(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	user := createAccount(t, services)

	createdRecipe, err := services.CatalogService.Create(ctx, sampleRecipe(user.ID))
	require.NoError(t, err)

	otherUser, err := services.AccountService.Create(ctx, "other@example.com", "Other", TestAccountPassword)
	require.NoError(t, err)

	fileHeader := testutil.CreateFileHeader(t, "photo.png", testutil.PNGImageBytes())

	_, err = services.ImageService.UploadImage(ctx, otherUser.ID, createdRecipe.ID, fileHeader)
	assert.ErrorIs(t, err, recipes.ErrNotFound)
}
