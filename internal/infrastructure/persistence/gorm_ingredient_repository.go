package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence/models"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"
	"github.com/google/uuid"

	"gorm.io/gorm"
)

type gormIngredientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormIngredientRepository creates a new GORM-based IngredientRepository implementation
func NewGormIngredientRepository(db *gorm.DB, logger logger.Logger) (recipes.IngredientRepository, error) {
	return &gormIngredientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormIngredientRepository) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Ingredient, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.IngredientModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("ingredients.user_id = ?", query.UserID)

	if query.AssignedOnly {
		dbQuery = dbQuery.Where("ingredients.id IN (?)",
			r.db.Table("recipe_ingredients").Select("ingredient_id"))
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = recipes.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("ingredients.%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch ingredients: %w", err)
	}

	domainList := make([]*recipes.Ingredient, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormIngredientRepository) GetByID(ctx context.Context, userID, ingredientID string) (*recipes.Ingredient, error) {
	var model models.IngredientModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", ingredientID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("ingredient with ID %s: %w", ingredientID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch ingredient: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormIngredientRepository) GetOrCreate(ctx context.Context, userID, name string) (*recipes.Ingredient, error) {
	var model models.IngredientModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch ingredient: %w", err)
	}

	model = models.IngredientModel{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent request created it first
			if err := r.db.WithContext(ctx).
				Where("user_id = ? AND name = ?", userID, name).
				First(&model).Error; err != nil {
				return nil, fmt.Errorf("failed to fetch ingredient: %w", err)
			}
			return model.ToDomain(), nil
		}
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	r.logger.Info("Created ingredient with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormIngredientRepository) UpdateByID(ctx context.Context, ingredient *recipes.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.IngredientModel{}
	model.FromDomain(ingredient)

	result := r.db.WithContext(ctx).
		Model(&models.IngredientModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Update("name", model.Name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("ingredient %s: %w", ingredient.Name, recipes.ErrDuplicateName)
		}
		return fmt.Errorf("failed to update ingredient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient with ID %s: %w", ingredient.ID, recipes.ErrNotFound)
	}

	r.logger.Info("Updated ingredient with id ", ingredient.ID)
	return nil
}

func (r *gormIngredientRepository) DeleteByID(ctx context.Context, userID, ingredientID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", ingredientID, userID).
		Delete(&models.IngredientModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete ingredient: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingredient with ID %s: %w", ingredientID, recipes.ErrNotFound)
	}

	r.logger.Info("Deleted ingredient with id ", ingredientID)
	return nil
}
