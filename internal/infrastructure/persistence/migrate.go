package persistence

import (
	"fmt"

	"github.com/Renz00/recipe-vault/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// AutoMigrateAll migrates the full schema. Attribute tables come first so
// the recipe join tables can reference them.
func AutoMigrateAll(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserModel{},
		&models.TagModel{},
		&models.IngredientModel{},
		&models.RecipeModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
