package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/google/uuid"
)

// userAccountService implements the UserAccountService interface for
// registering and managing accounts
type userAccountService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewUserAccountService creates a new userAccountService instance
func NewUserAccountService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	logger logger.Logger,
) (users.UserAccountService, error) {
	return &userAccountService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Create registers a new active account. The email domain is lowercased
// before the account is stored.
func (s *userAccountService) Create(ctx context.Context, email, name, password string) (*users.User, error) {
	return s.createAccount(ctx, email, name, password, false)
}

// CreateSuperuser registers an account carrying staff and superuser flags.
func (s *userAccountService) CreateSuperuser(ctx context.Context, email, name, password string) (*users.User, error) {
	return s.createAccount(ctx, email, name, password, true)
}

func (s *userAccountService) createAccount(ctx context.Context, email, name, password string, superuser bool) (*users.User, error) {
	if len(password) < users.MinPasswordLength {
		return nil, users.ErrPasswordTooShort
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &users.User{
		ID:           uuid.NewString(),
		Email:        users.NormalizeEmail(email),
		Name:         name,
		PasswordHash: passwordHash,
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
		CreatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Registered account with id ", user.ID)
	return user, nil
}

// GetByID retrieves an account by ID.
func (s *userAccountService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateByID changes the display name and/or password. Nil fields are left
// untouched.
func (s *userAccountService) UpdateByID(ctx context.Context, userID string, name, password *string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		user.Name = *name
	}
	if password != nil {
		if len(*password) < users.MinPasswordLength {
			return nil, users.ErrPasswordTooShort
		}
		passwordHash, err := s.hasher.Hash(*password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = passwordHash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("Updated account with id ", user.ID)
	return user, nil
}

// userAuthService implements the UserAuthService interface for issuing and
// verifying access tokens
type userAuthService struct {
	userRepo     users.UserRepository
	hasher       users.PasswordHasher
	tokenManager users.TokenManager
	logger       logger.Logger
}

// NewUserAuthService creates a new userAuthService instance
func NewUserAuthService(
	userRepo users.UserRepository,
	hasher users.PasswordHasher,
	tokenManager users.TokenManager,
	logger logger.Logger,
) (users.UserAuthService, error) {
	return &userAuthService{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
	}, nil
}

// IssueToken verifies the credentials and returns a signed access token.
// Unknown emails, wrong passwords and inactive accounts all surface as
// ErrInvalidCredentials.
func (s *userAuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", users.ErrInvalidCredentials
		}
		return "", err
	}

	if !user.IsActive {
		return "", users.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return "", users.ErrInvalidCredentials
		}
		return "", err
	}

	token, err := s.tokenManager.Generate(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}

// VerifyToken parses a token and confirms the account behind it is still
// active, returning the user ID.
func (s *userAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	userID, err := s.tokenManager.Parse(token)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return "", users.ErrInvalidToken
		}
		return "", err
	}
	if !user.IsActive {
		return "", users.ErrInvalidToken
	}

	return user.ID, nil
}
