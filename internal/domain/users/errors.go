package users

import "errors"

// Sentinel errors surfaced across the user account and auth services.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers unknown emails, wrong passwords and
	// inactive accounts without distinguishing between them.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")

	// ErrPasswordTooShort indicates the plaintext password is below the
	// minimum length.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidToken indicates an access token that is malformed, expired
	// or signed with the wrong key.
	ErrInvalidToken = errors.New("invalid or expired token")
)
