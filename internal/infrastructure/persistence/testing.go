//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"
)

// Test constants
const (
	TestUserName     = "Test Name"
	TestPasswordHash = "test-password-hash"

	TestRecipeTitle   = "Sample recipe"
	TestRecipeMinutes = 10
	TestRecipePrice   = "5.25"

	TestTagName        = "Vegan"
	TestIngredientName = "Cucumber"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	UserRepo       users.UserRepository
	RecipeRepo     recipes.RecipeRepository
	TagRepo        recipes.TagRepository
	IngredientRepo recipes.IngredientRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:     config.PostgresDbType,
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Name:     uniqueDBName,
		}
		adminDSN := settings.AdminDSN() + " dbname=postgres"
		cleanupFunc = func() {
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = AutoMigrateAll(db)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	recipeRepo, err := NewGormRecipeRepository(db, logger)
	require.NoError(t, err, "Failed to create recipe repository")

	tagRepo, err := NewGormTagRepository(db, logger)
	require.NoError(t, err, "Failed to create tag repository")

	ingredientRepo, err := NewGormIngredientRepository(db, logger)
	require.NoError(t, err, "Failed to create ingredient repository")

	return &TestContext{
		DB:             db,
		UserRepo:       userRepo,
		RecipeRepo:     recipeRepo,
		TagRepo:        tagRepo,
		IngredientRepo: ingredientRepo,
	}
}

// CreateTestUser creates a test user with a unique email
func CreateTestUser(t *testing.T) *users.User {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return &users.User{
		ID:           uuid.NewString(),
		Email:        "user-" + suffix + "@example.com",
		Name:         TestUserName,
		PasswordHash: TestPasswordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

// CreateTestRecipe creates a test recipe with default values
func CreateTestRecipe(t *testing.T, userID string) *recipes.Recipe {
	t.Helper()

	price, err := decimal.NewFromString(TestRecipePrice)
	require.NoError(t, err, "Failed to parse test price")

	return &recipes.Recipe{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       TestRecipeTitle,
		TimeMinutes: TestRecipeMinutes,
		Price:       price,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateTestRecipeWithOptions creates a test recipe with custom options
func CreateTestRecipeWithOptions(t *testing.T, userID, title string, timeMinutes int, price string) *recipes.Recipe {
	t.Helper()

	parsedPrice, err := decimal.NewFromString(price)
	require.NoError(t, err, "Failed to parse test price")

	return &recipes.Recipe{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		TimeMinutes: timeMinutes,
		Price:       parsedPrice,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateTestTag creates a test tag owned by the given user
func CreateTestTag(t *testing.T, userID, name string) *recipes.Tag {
	t.Helper()

	if name == "" {
		name = TestTagName
	}

	return &recipes.Tag{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
}

// CreateTestIngredient creates a test ingredient owned by the given user
func CreateTestIngredient(t *testing.T, userID, name string) *recipes.Ingredient {
	t.Helper()

	if name == "" {
		name = TestIngredientName
	}

	return &recipes.Ingredient{
		ID:     uuid.NewString(),
		UserID: userID,
		Name:   name,
	}
}
