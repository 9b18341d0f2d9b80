package users

import "context"

// UserAccountService defines methods for registering and managing accounts.
type UserAccountService interface {
	// Create registers a new active account from an email, display name and
	// plaintext password. It returns the created User and any error
	// encountered during registration.
	Create(ctx context.Context, email, name, password string) (*User, error)

	// GetByID retrieves an account by ID.
	GetByID(ctx context.Context, userID string) (*User, error)

	// UpdateByID changes the display name and/or password of an account.
	// Nil fields are left untouched.
	UpdateByID(ctx context.Context, userID string, name, password *string) (*User, error)

	// CreateSuperuser registers an account with staff and superuser flags
	// set, used by operational tooling.
	CreateSuperuser(ctx context.Context, email, name, password string) (*User, error)
}

// UserAuthService defines methods for issuing and verifying access tokens.
type UserAuthService interface {
	// IssueToken verifies the credentials and returns a signed access token.
	IssueToken(ctx context.Context, email, password string) (string, error)

	// VerifyToken parses and validates a token, returning the user ID it
	// was issued for.
	VerifyToken(ctx context.Context, token string) (string, error)
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	// Create adds a new User to the database
	Create(ctx context.Context, user *User) error
	// GetByID retrieves a User from the database by ID
	GetByID(ctx context.Context, userID string) (*User, error)
	// GetByEmail retrieves a User from the database by email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateByID updates a User in the database by ID
	UpdateByID(ctx context.Context, user *User) error
}

// PasswordHasher abstracts the one-way password hashing scheme.
type PasswordHasher interface {
	// Hash derives a storable hash from a plaintext password.
	Hash(password string) (string, error)
	// Compare checks a plaintext password against a stored hash and
	// returns an error on mismatch.
	Compare(hash, password string) error
}

// TokenManager abstracts signing and parsing of access tokens.
type TokenManager interface {
	// Generate signs a token carrying the user ID.
	Generate(userID string) (string, error)
	// Parse validates a token and extracts the user ID.
	Parse(token string) (string, error)
}
