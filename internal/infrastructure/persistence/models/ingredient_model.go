package models

import (
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
)

// IngredientModel is the GORM database model for ingredients (infrastructure
// concern). Uniqueness and ownership rules mirror TagModel.
type IngredientModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_ingredients_user_name,unique;type:uuid"`
	Name      string    `gorm:"not null;index:idx_ingredients_user_name,unique;type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (IngredientModel) TableName() string {
	return "ingredients"
}

// ToDomain converts GORM model to domain entity
func (m *IngredientModel) ToDomain() *recipes.Ingredient {
	return &recipes.Ingredient{
		ID:     m.ID,
		UserID: m.UserID,
		Name:   m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *IngredientModel) FromDomain(i *recipes.Ingredient) {
	m.ID = i.ID
	m.UserID = i.UserID
	m.Name = i.Name
}
