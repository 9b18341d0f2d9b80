//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence"
	"github.com/Renz00/recipe-vault/internal/infrastructure/security"
	"github.com/Renz00/recipe-vault/internal/infrastructure/storage"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestAccountEmail    = "user@example.com"
	TestAccountName     = "Test Name"
	TestAccountPassword = "testpass123"
	TestSecretKey       = "test-secret-key"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AccountService    users.UserAccountService
	AuthService       users.UserAuthService
	CatalogService    recipes.RecipeCatalogService
	ImageService      recipes.RecipeImageService
	TagService        recipes.TagService
	IngredientService recipes.IngredientService

	DBContext *persistence.TestContext
	MediaRoot string
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	// Setup database and repositories
	dbContext := persistence.SetupTestDB(t, dbType)

	// Setup security
	hasher, err := security.NewBcryptPasswordHasher(logger)
	require.NoError(t, err, "Failed to create password hasher")

	authSettings := &config.AuthSettings{
		SecretKey:     TestSecretKey,
		TokenTTLHours: 1,
	}
	tokenManager, err := security.NewJwtTokenManager(authSettings, logger)
	require.NoError(t, err, "Failed to create token manager")

	// Setup media storage
	mediaRoot := t.TempDir()
	storageSettings := &config.StorageSettings{
		MediaRoot:  mediaRoot,
		StaticRoot: t.TempDir(),
	}
	mediaStore, err := storage.NewFileStore(storageSettings, logger)
	require.NoError(t, err, "Failed to create media store")

	// Setup services
	accountService, err := NewUserAccountService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create account service")

	authService, err := NewUserAuthService(dbContext.UserRepo, hasher, tokenManager, logger)
	require.NoError(t, err, "Failed to create auth service")

	catalogService, err := NewRecipeCatalogService(dbContext.RecipeRepo, dbContext.TagRepo, dbContext.IngredientRepo, logger)
	require.NoError(t, err, "Failed to create catalog service")

	imageService, err := NewRecipeImageService(dbContext.RecipeRepo, mediaStore, logger)
	require.NoError(t, err, "Failed to create image service")

	tagService, err := NewTagService(dbContext.TagRepo, logger)
	require.NoError(t, err, "Failed to create tag service")

	ingredientService, err := NewIngredientService(dbContext.IngredientRepo, logger)
	require.NoError(t, err, "Failed to create ingredient service")

	return &TestServices{
		AccountService:    accountService,
		AuthService:       authService,
		CatalogService:    catalogService,
		ImageService:      imageService,
		TagService:        tagService,
		IngredientService: ingredientService,
		DBContext:         dbContext,
		MediaRoot:         mediaRoot,
	}
}
