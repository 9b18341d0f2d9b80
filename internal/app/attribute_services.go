package app

import (
	"context"
	"fmt"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
)

// tagService implements the TagService interface for listing and managing
// tags
type tagService struct {
	tagRepo recipes.TagRepository
	logger  logger.Logger
}

// NewTagService creates a new tagService instance
func NewTagService(tagRepo recipes.TagRepository, logger logger.Logger) (recipes.TagService, error) {
	return &tagService{
		tagRepo: tagRepo,
		logger:  logger,
	}, nil
}

// List retrieves the owner's tags considering the query filters.
func (s *tagService) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Tag, error) {
	return s.tagRepo.List(ctx, query)
}

// UpdateByID renames one of the owner's tags.
func (s *tagService) UpdateByID(ctx context.Context, userID, tagID, name string) (*recipes.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, userID, tagID)
	if err != nil {
		return nil, err
	}

	tag.Name = name
	if err := tag.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.tagRepo.UpdateByID(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// DeleteByID removes one of the owner's tags.
func (s *tagService) DeleteByID(ctx context.Context, userID, tagID string) error {
	return s.tagRepo.DeleteByID(ctx, userID, tagID)
}

// ingredientService implements the IngredientService interface for listing
// and managing ingredients
type ingredientService struct {
	ingredientRepo recipes.IngredientRepository
	logger         logger.Logger
}

// NewIngredientService creates a new ingredientService instance
func NewIngredientService(ingredientRepo recipes.IngredientRepository, logger logger.Logger) (recipes.IngredientService, error) {
	return &ingredientService{
		ingredientRepo: ingredientRepo,
		logger:         logger,
	}, nil
}

// List retrieves the owner's ingredients considering the query filters.
func (s *ingredientService) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Ingredient, error) {
	return s.ingredientRepo.List(ctx, query)
}

// UpdateByID renames one of the owner's ingredients.
func (s *ingredientService) UpdateByID(ctx context.Context, userID, ingredientID, name string) (*recipes.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, userID, ingredientID)
	if err != nil {
		return nil, err
	}

	ingredient.Name = name
	if err := ingredient.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.ingredientRepo.UpdateByID(ctx, ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// DeleteByID removes one of the owner's ingredients.
func (s *ingredientService) DeleteByID(ctx context.Context, userID, ingredientID string) error {
	return s.ingredientRepo.DeleteByID(ctx, userID, ingredientID)
}
