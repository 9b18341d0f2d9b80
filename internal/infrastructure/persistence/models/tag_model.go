package models

import (
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/recipes"
)

// TagModel is the GORM database model for tags (infrastructure concern).
// The (user_id, name) pair is unique so concurrent get-or-create resolves
// to a single row.
type TagModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_tags_user_name,unique;type:uuid"`
	Name      string    `gorm:"not null;index:idx_tags_user_name,unique;type:varchar(255)"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts GORM model to domain entity
func (m *TagModel) ToDomain() *recipes.Tag {
	return &recipes.Tag{
		ID:     m.ID,
		UserID: m.UserID,
		Name:   m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TagModel) FromDomain(t *recipes.Tag) {
	m.ID = t.ID
	m.UserID = t.UserID
	m.Name = t.Name
}
