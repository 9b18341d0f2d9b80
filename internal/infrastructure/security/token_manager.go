package security

import (
	"fmt"
	"time"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

// jwtTokenManager struct that implements the TokenManager interface
type jwtTokenManager struct {
	secretKey []byte
	ttl       time.Duration
	logger    logger.Logger
}

// NewJwtTokenManager creates and returns a new instance of jwtTokenManager
func NewJwtTokenManager(settings *config.AuthSettings, logger logger.Logger) (users.TokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}

	return &jwtTokenManager{
		secretKey: []byte(settings.SecretKey),
		ttl:       time.Duration(settings.TokenTTLHours) * time.Hour,
		logger:    logger,
	}, nil
}

// Generate signs an HS256 token carrying the user ID as subject.
func (m *jwtTokenManager) Generate(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	m.logger.Info("Issued access token for user ", userID)
	return signedToken, nil
}

// Parse validates a token and extracts the user ID it was issued for.
// All parse failures collapse into ErrInvalidToken.
func (m *jwtTokenManager) Parse(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", users.ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", users.ErrInvalidToken
	}

	return claims.Subject, nil
}
