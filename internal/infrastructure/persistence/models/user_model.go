package models

import (
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/users"
)

// UserModel is the GORM database model for user accounts (infrastructure concern)
type UserModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name         string    `gorm:"type:varchar(255)"`
	PasswordHash string    `gorm:"not null;type:varchar(255)"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsStaff      bool      `gorm:"not null;default:false"`
	IsSuperuser  bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		IsActive:     m.IsActive,
		IsStaff:      m.IsStaff,
		IsSuperuser:  m.IsSuperuser,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.PasswordHash = u.PasswordHash
	m.IsActive = u.IsActive
	m.IsStaff = u.IsStaff
	m.IsSuperuser = u.IsSuperuser
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
