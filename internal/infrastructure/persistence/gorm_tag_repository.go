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

type gormTagRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTagRepository creates a new GORM-based TagRepository implementation
func NewGormTagRepository(db *gorm.DB, logger logger.Logger) (recipes.TagRepository, error) {
	return &gormTagRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTagRepository) List(ctx context.Context, query *recipes.AttributeQuery) ([]*recipes.Tag, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.TagModel
	dbQuery := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("tags.user_id = ?", query.UserID)

	if query.AssignedOnly {
		dbQuery = dbQuery.Where("tags.id IN (?)",
			r.db.Table("recipe_tags").Select("tag_id"))
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = recipes.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("tags.%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	domainList := make([]*recipes.Tag, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTagRepository) GetByID(ctx context.Context, userID, tagID string) (*recipes.Tag, error) {
	var model models.TagModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tagID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("tag with ID %s: %w", tagID, recipes.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch tag: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTagRepository) GetOrCreate(ctx context.Context, userID, name string) (*recipes.Tag, error) {
	var model models.TagModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&model).Error
	if err == nil {
		return model.ToDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to fetch tag: %w", err)
	}

	model = models.TagModel{
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
				return nil, fmt.Errorf("failed to fetch tag: %w", err)
			}
			return model.ToDomain(), nil
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	r.logger.Info("Created tag with id ", model.ID)
	return model.ToDomain(), nil
}

func (r *gormTagRepository) UpdateByID(ctx context.Context, tag *recipes.Tag) error {
	if err := tag.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TagModel{}
	model.FromDomain(tag)

	result := r.db.WithContext(ctx).
		Model(&models.TagModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Update("name", model.Name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("tag %s: %w", tag.Name, recipes.ErrDuplicateName)
		}
		return fmt.Errorf("failed to update tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("tag with ID %s: %w", tag.ID, recipes.ErrNotFound)
	}

	r.logger.Info("Updated tag with id ", tag.ID)
	return nil
}

func (r *gormTagRepository) DeleteByID(ctx context.Context, userID, tagID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", tagID, userID).
		Delete(&models.TagModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete tag: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("tag with ID %s: %w", tagID, recipes.ErrNotFound)
	}

	r.logger.Info("Deleted tag with id ", tagID)
	return nil
}
