package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence/models"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRecipeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRecipeRepository creates a new GORM-based RecipeRepository implementation
func NewGormRecipeRepository(db *gorm.DB, logger logger.Logger) (recipes.RecipeRepository, error) {
	return &gormRecipeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRecipeRepository) Create(ctx context.Context, recipe *recipes.Recipe) error {
	// Validate domain entity (business rules)
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	// Convert to GORM model; attachments are applied separately
	model := &models.RecipeModel{}
	model.FromDomain(recipe)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	r.logger.Info("Created recipe with id ", recipe.ID)
	return nil
}

func (r *gormRecipeRepository) List(ctx context.Context, query *recipes.RecipeQuery) ([]*recipes.Recipe, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.RecipeModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.RecipeModel{}).
		Where("recipes.user_id = ?", query.UserID).
		Preload("Tags").
		Preload("Ingredients")

	// Attribute filters select recipes attached to any of the given IDs.
	// Subqueries keep the result set distinct without a JOIN.
	if len(query.TagIDs) > 0 {
		dbQuery = dbQuery.Where("recipes.id IN (?)",
			r.db.Table("recipe_tags").Select("recipe_id").Where("tag_id IN ?", query.TagIDs))
	}
	if len(query.IngredientIDs) > 0 {
		dbQuery = dbQuery.Where("recipes.id IN (?)",
			r.db.Table("recipe_ingredients").Select("recipe_id").Where("ingredient_id IN ?", query.IngredientIDs))
	}

	// Sorting
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = recipes.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("recipes.%s %s", query.SortBy, order))
	}

	// Pagination
	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recipes: %w", err)
	}

	// Convert to domain models
	domainList := make([]*recipes.Recipe, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormRecipeRepository) GetByID(ctx context.Context, userID, recipeID string) (*recipes.Recipe, error) {
	var model models.RecipeModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Preload("Tags").
		Preload("Ingredients").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("recipe with ID %s: %w", recipeID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch recipe: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormRecipeRepository) UpdateByID(ctx context.Context, recipe *recipes.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.RecipeModel{}
	model.FromDomain(recipe)

	if err := r.db.WithContext(ctx).Omit("Tags", "Ingredients").Save(model).Error; err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	r.logger.Info("Updated recipe with id ", recipe.ID)
	return nil
}

func (r *gormRecipeRepository) ReplaceTags(ctx context.Context, recipeID string, tags []recipes.Tag) error {
	tagModels := make([]models.TagModel, len(tags))
	for i := range tags {
		tagModels[i].FromDomain(&tags[i])
	}

	err := r.db.WithContext(ctx).
		Model(&models.RecipeModel{ID: recipeID}).
		Association("Tags").
		Replace(&tagModels)
	if err != nil {
		return fmt.Errorf("failed to replace tags: %w", err)
	}
	return nil
}

func (r *gormRecipeRepository) ReplaceIngredients(ctx context.Context, recipeID string, ingredients []recipes.Ingredient) error {
	ingredientModels := make([]models.IngredientModel, len(ingredients))
	for i := range ingredients {
		ingredientModels[i].FromDomain(&ingredients[i])
	}

	err := r.db.WithContext(ctx).
		Model(&models.RecipeModel{ID: recipeID}).
		Association("Ingredients").
		Replace(&ingredientModels)
	if err != nil {
		return fmt.Errorf("failed to replace ingredients: %w", err)
	}
	return nil
}

func (r *gormRecipeRepository) DeleteByID(ctx context.Context, userID, recipeID string) error {
	var model models.RecipeModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", recipeID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("recipe with ID %s: %w", recipeID, recipes.ErrNotFound)
		}
		return fmt.Errorf("failed to fetch recipe: %w", err)
	}

	// Select(Associations) removes the join table rows alongside the recipe
	if err := r.db.WithContext(ctx).Select(clause.Associations).Delete(&model).Error; err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	r.logger.Info("Deleted recipe with id ", recipeID)
	return nil
}
