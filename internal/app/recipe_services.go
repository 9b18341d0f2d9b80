package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// recipeCatalogService implements the RecipeCatalogService interface for
// managing a user's recipes
type recipeCatalogService struct {
	recipeRepo     recipes.RecipeRepository
	tagRepo        recipes.TagRepository
	ingredientRepo recipes.IngredientRepository
	logger         logger.Logger
}

// NewRecipeCatalogService creates a new recipeCatalogService instance
func NewRecipeCatalogService(
	recipeRepo recipes.RecipeRepository,
	tagRepo recipes.TagRepository,
	ingredientRepo recipes.IngredientRepository,
	logger logger.Logger,
) (recipes.RecipeCatalogService, error) {
	return &recipeCatalogService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		logger:         logger,
	}, nil
}

// List retrieves the owner's recipes considering the query filters.
func (s *recipeCatalogService) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, error) {
	return s.recipeRepo.List(ctx, query)
}

// GetByID retrieves one of the owner's recipes with attributes attached.
func (s *recipeCatalogService) GetByID(ctx context.Context, userID, recipeID string) (*recipes.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, userID, recipeID)
}

// Create persists a new recipe. Attribute entries are matched against the
// owner's existing tags and ingredients by name, creating what is missing.
func (s *recipeCatalogService) Create(ctx context.Context, recipe *recipes.Recipe) (*recipes.Recipe, error) {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	tags, err := s.resolveTags(ctx, recipe.UserID, recipe.Tags)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.resolveIngredients(ctx, recipe.UserID, recipe.Ingredients)
	if err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}
	if err := s.recipeRepo.ReplaceTags(ctx, recipe.ID, tags); err != nil {
		return nil, err
	}
	if err := s.recipeRepo.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
		return nil, err
	}

	s.logger.Info("Created recipe with id ", recipe.ID)
	return s.recipeRepo.GetByID(ctx, recipe.UserID, recipe.ID)
}

// UpdateByID applies a partial update to one of the owner's recipes. A nil
// attribute set leaves the attachments alone, an empty one clears them.
func (s *recipeCatalogService) UpdateByID(ctx context.Context, userID, recipeID string, update *recipes.RecipeUpdate) (*recipes.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		recipe.Title = *update.Title
	}
	if update.TimeMinutes != nil {
		recipe.TimeMinutes = *update.TimeMinutes
	}
	if update.Price != nil {
		recipe.Price = *update.Price
	}
	if update.Description != nil {
		recipe.Description = *update.Description
	}
	if update.Link != nil {
		recipe.Link = *update.Link
	}
	recipe.UpdatedAt = time.Now().UTC()

	if err := recipe.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.recipeRepo.UpdateByID(ctx, recipe); err != nil {
		return nil, err
	}

	if update.Tags != nil {
		tags, err := s.resolveTags(ctx, userID, *update.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepo.ReplaceTags(ctx, recipeID, tags); err != nil {
			return nil, err
		}
	}
	if update.Ingredients != nil {
		ingredients, err := s.resolveIngredients(ctx, userID, *update.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepo.ReplaceIngredients(ctx, recipeID, ingredients); err != nil {
			return nil, err
		}
	}

	s.logger.Info("Updated recipe with id ", recipeID)
	return s.recipeRepo.GetByID(ctx, userID, recipeID)
}

// DeleteByID removes one of the owner's recipes.
func (s *recipeCatalogService) DeleteByID(ctx context.Context, userID, recipeID string) error {
	if err := s.recipeRepo.DeleteByID(ctx, userID, recipeID); err != nil {
		return err
	}

	s.logger.Info("Deleted recipe with id ", recipeID)
	return nil
}

// resolveTags maps incoming attribute entries onto stored rows owned by the
// user, creating missing ones by name.
func (s *recipeCatalogService) resolveTags(ctx context.Context, userID string, tags []recipes.Tag) ([]recipes.Tag, error) {
	resolved := make([]recipes.Tag, 0, len(tags))
	for _, tag := range tags {
		stored, err := s.tagRepo.GetOrCreate(ctx, userID, tag.Name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *stored)
	}
	return resolved, nil
}

func (s *recipeCatalogService) resolveIngredients(ctx context.Context, userID string, ingredients []recipes.Ingredient) ([]recipes.Ingredient, error) {
	resolved := make([]recipes.Ingredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		stored, err := s.ingredientRepo.GetOrCreate(ctx, userID, ingredient.Name)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *stored)
	}
	return resolved, nil
}

// recipeImageService implements the RecipeImageService interface for
// attaching images to recipes
type recipeImageService struct {
	recipeRepo recipes.RecipeRepository
	mediaStore recipes.MediaStore
	logger     logger.Logger
}

// NewRecipeImageService creates a new recipeImageService instance
func NewRecipeImageService(
	recipeRepo recipes.RecipeRepository,
	mediaStore recipes.MediaStore,
	logger logger.Logger,
) (recipes.RecipeImageService, error) {
	return &recipeImageService{
		recipeRepo: recipeRepo,
		mediaStore: mediaStore,
		logger:     logger,
	}, nil
}

// UploadImage sniffs the upload, stores it under a fresh name beneath the
// media root and records the path on the recipe. A previously attached
// image is removed afterwards.
func (s *recipeImageService) UploadImage(ctx context.Context, userID, recipeID string, fileHeader *multipart.FileHeader) (*recipes.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	contentType := http.DetectContentType(head[:n])
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%s: %w", contentType, recipes.ErrNotAnImage)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	relPath := path.Join("uploads", "recipe", uuid.NewString()+ext)

	if err := s.mediaStore.Save(ctx, relPath, file); err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	previousPath := recipe.ImagePath
	recipe.ImagePath = &relPath
	recipe.UpdatedAt = time.Now().UTC()

	if err := s.recipeRepo.UpdateByID(ctx, recipe); err != nil {
		return nil, err
	}

	if previousPath != nil {
		if err := s.mediaStore.Remove(ctx, *previousPath); err != nil {
			s.logger.Warn("Failed to remove previous image: ", err)
		}
	}

	s.logger.Info("Attached image to recipe with id ", recipeID)
	return recipe, nil
}
