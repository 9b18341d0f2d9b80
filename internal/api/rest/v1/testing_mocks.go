//go:build unit
// +build unit

package v1

import (
	"context"
	"mime/multipart"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// testUserID is a stable owner ID for handler tests; queries require
// well-formed UUIDs.
const testUserID = "1edb98fa-07d9-4f45-bb01-9c1ae0f46f75"

// MockUserAccountService is a mock implementation of UserAccountService
type MockUserAccountService struct {
	mock.Mock
}

func (m *MockUserAccountService) Create(ctx context.Context, email, name, password string) (*users.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) UpdateByID(ctx context.Context, userID string, name, password *string) (*users.User, error) {
	args := m.Called(ctx, userID, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserAccountService) CreateSuperuser(ctx context.Context, email, name, password string) (*users.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

// MockUserAuthService is a mock implementation of UserAuthService
type MockUserAuthService struct {
	mock.Mock
}

func (m *MockUserAuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// MockRecipeCatalogService is a mock implementation of RecipeCatalogService
type MockRecipeCatalogService struct {
	mock.Mock
}

func (m *MockRecipeCatalogService) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeCatalogService) GetByID(ctx context.Context, userID, recipeID string) (*recipes.Recipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeCatalogService) Create(ctx context.Context, recipe *recipes.Recipe) (*recipes.Recipe, error) {
	args := m.Called(ctx, recipe)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeCatalogService) UpdateByID(ctx context.Context, userID, recipeID string, update *recipes.RecipeUpdate) (*recipes.Recipe, error) {
	args := m.Called(ctx, userID, recipeID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

func (m *MockRecipeCatalogService) DeleteByID(ctx context.Context, userID, recipeID string) error {
	args := m.Called(ctx, userID, recipeID)
	return args.Error(0)
}

// MockRecipeImageService is a mock implementation of RecipeImageService
type MockRecipeImageService struct {
	mock.Mock
}

func (m *MockRecipeImageService) UploadImage(ctx context.Context, userID, recipeID string, file *multipart.FileHeader) (*recipes.Recipe, error) {
	args := m.Called(ctx, userID, recipeID, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Recipe), args.Error(1)
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Tag, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipes.Tag), args.Error(1)
}

func (m *MockTagService) UpdateByID(ctx context.Context, userID, tagID, name string) (*recipes.Tag, error) {
	args := m.Called(ctx, userID, tagID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Tag), args.Error(1)
}

func (m *MockTagService) DeleteByID(ctx context.Context, userID, tagID string) error {
	args := m.Called(ctx, userID, tagID)
	return args.Error(0)
}

// MockIngredientService is a mock implementation of IngredientService
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Ingredient, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) UpdateByID(ctx context.Context, userID, ingredientID, name string) (*recipes.Ingredient, error) {
	args := m.Called(ctx, userID, ingredientID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipes.Ingredient), args.Error(1)
}

func (m *MockIngredientService) DeleteByID(ctx context.Context, userID, ingredientID string) error {
	args := m.Called(ctx, userID, ingredientID)
	return args.Error(0)
}
