//go:build unit
// +build unit

package users

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *User {
	return &User{
		ID:           uuid.New().String(),
		Email:        "test@example.com",
		Name:         "Test Name",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*User)
		shouldErr bool
	}{
		{"valid user", func(u *User) {}, false},
		{"missing id", func(u *User) { u.ID = "" }, true},
		{"non uuid id", func(u *User) { u.ID = "42" }, true},
		{"missing email", func(u *User) { u.Email = "" }, true},
		{"malformed email", func(u *User) { u.Email = "not-an-email" }, true},
		{"missing password hash", func(u *User) { u.PasswordHash = "" }, true},
		{"empty name is allowed", func(u *User) { u.Name = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(user)

			err := user.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"test1@EXAMPLE.com", "test1@example.com"},
		{"Test2@Example.com", "Test2@example.com"},
		{"TEST3@EXAMPLE.COM", "TEST3@example.com"},
		{"test4@example.COM", "test4@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeEmail(tt.input))
		})
	}
}

func TestNormalizeEmailWithoutDomain(t *testing.T) {
	// No @ means nothing to normalize; field validation rejects it later.
	assert.Equal(t, "plainstring", NormalizeEmail("plainstring"))
}
