package security

import (
	"errors"
	"fmt"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// bcryptPasswordHasher struct that implements the PasswordHasher interface
type bcryptPasswordHasher struct {
	cost   int
	logger logger.Logger
}

// NewBcryptPasswordHasher creates and returns a new instance of bcryptPasswordHasher
func NewBcryptPasswordHasher(logger logger.Logger) (users.PasswordHasher, error) {
	return &bcryptPasswordHasher{
		cost:   bcrypt.DefaultCost,
		logger: logger,
	}, nil
}

// Hash derives a bcrypt hash from the plaintext password.
func (h *bcryptPasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks the plaintext password against the stored hash. Mismatches
// surface as ErrInvalidCredentials so callers never leak hash details.
func (h *bcryptPasswordHasher) Compare(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return users.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to compare password: %w", err)
	}
	return nil
}
