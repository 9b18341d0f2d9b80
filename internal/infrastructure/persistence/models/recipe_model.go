package models

import (
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
	"github.com/shopspring/decimal"
)

// RecipeModel is the GORM database model for recipes (infrastructure concern).
// Attribute attachments live in the recipe_tags and recipe_ingredients join
// tables with cascading cleanup on either side.
type RecipeModel struct {
	ID          string          `gorm:"primaryKey;type:uuid"`
	UserID      string          `gorm:"not null;index;type:uuid"`
	Title       string          `gorm:"not null;type:varchar(255)"`
	TimeMinutes int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(5,2)"`
	Description string          `gorm:"type:text"`
	Link        string          `gorm:"type:varchar(255)"`
	ImagePath   *string         `gorm:"type:varchar(500)"`
	Tags        []TagModel      `gorm:"many2many:recipe_tags;joinForeignKey:RecipeID;joinReferences:TagID;constraint:OnDelete:CASCADE"`
	Ingredients []IngredientModel `gorm:"many2many:recipe_ingredients;joinForeignKey:RecipeID;joinReferences:IngredientID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (RecipeModel) TableName() string {
	return "recipes"
}

// ToDomain converts GORM model to domain entity
func (m *RecipeModel) ToDomain() *recipes.Recipe {
	tags := make([]recipes.Tag, len(m.Tags))
	for i, tag := range m.Tags {
		tags[i] = *tag.ToDomain()
	}

	ingredients := make([]recipes.Ingredient, len(m.Ingredients))
	for i, ingredient := range m.Ingredients {
		ingredients[i] = *ingredient.ToDomain()
	}

	return &recipes.Recipe{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		TimeMinutes: m.TimeMinutes,
		Price:       m.Price,
		Description: m.Description,
		Link:        m.Link,
		ImagePath:   m.ImagePath,
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model. Attribute attachments are
// managed through the association helpers, not through this mapping.
func (m *RecipeModel) FromDomain(r *recipes.Recipe) {
	m.ID = r.ID
	m.UserID = r.UserID
	m.Title = r.Title
	m.TimeMinutes = r.TimeMinutes
	m.Price = r.Price
	m.Description = r.Description
	m.Link = r.Link
	m.ImagePath = r.ImagePath
	m.CreatedAt = r.CreatedAt
	m.UpdatedAt = r.UpdatedAt
}
