package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest plaintext password accepted at
// registration and on password change.
const MinPasswordLength = 5

// User entity
type User struct {
	ID           string `validate:"required,uuid4"`
	Email        string `validate:"required,email,max=255"`
	Name         string `validate:"max=255"`
	PasswordHash string `validate:"required"`
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time `validate:"required"`
	UpdatedAt    time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NormalizeEmail lowercases the domain part of an address while leaving the
// local part untouched. Addresses without an @ are returned unchanged and
// left for field validation to reject.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
