//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/infrastructure/ratelimit"
	"github.com/Renz00/recipe-vault/internal/pkg/config"
	"github.com/Renz00/recipe-vault/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAuthRouter(authService users.UserAuthService) *gin.Engine {
	r := gin.New()
	r.GET("/protected", TokenAuthMiddleware(authService), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(userIDContextKey))
	})
	return r
}

func TestTokenAuthMiddleware_BearerScheme_Success(t *testing.T) {
	mockAuthService := new(MockUserAuthService)
	mockAuthService.On("VerifyToken", mock.Anything, "good-token").Return(testUserID, nil)

	r := setupAuthRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUserID, w.Body.String())
	mockAuthService.AssertExpectations(t)
}

func TestTokenAuthMiddleware_LegacyTokenScheme_Success(t *testing.T) {
	mockAuthService := new(MockUserAuthService)
	mockAuthService.On("VerifyToken", mock.Anything, "good-token").Return(testUserID, nil)

	r := setupAuthRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestTokenAuthMiddleware_MissingHeader_Error(t *testing.T) {
	mockAuthService := new(MockUserAuthService)

	r := setupAuthRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "credentials were not provided")
	mockAuthService.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestTokenAuthMiddleware_UnknownScheme_Error(t *testing.T) {
	mockAuthService := new(MockUserAuthService)

	r := setupAuthRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockAuthService.AssertNotCalled(t, "VerifyToken", mock.Anything, mock.Anything)
}

func TestTokenAuthMiddleware_InvalidToken_Error(t *testing.T) {
	mockAuthService := new(MockUserAuthService)
	mockAuthService.On("VerifyToken", mock.Anything, "bad-token").Return("", users.ErrInvalidToken)

	r := setupAuthRouter(mockAuthService)

	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired token")
	mockAuthService.AssertExpectations(t)
}

func setupHostRouter(allowedHosts []string) *gin.Engine {
	r := gin.New()
	r.Use(AllowedHostsMiddleware(allowedHosts))
	r.GET("/anything", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	r.GET(healthCheckPath, func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return r
}

func TestAllowedHostsMiddleware_AllowedHost_Success(t *testing.T) {
	r := setupHostRouter([]string{"example.com"})

	req, _ := http.NewRequest("GET", "/anything", nil)
	req.Host = "example.com"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowedHostsMiddleware_HostWithPort_Success(t *testing.T) {
	r := setupHostRouter([]string{"example.com"})

	req, _ := http.NewRequest("GET", "/anything", nil)
	req.Host = "example.com:9000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowedHostsMiddleware_Wildcard_Success(t *testing.T) {
	r := setupHostRouter([]string{"*"})

	req, _ := http.NewRequest("GET", "/anything", nil)
	req.Host = "anything.example.org"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowedHostsMiddleware_DisallowedHost_Error(t *testing.T) {
	r := setupHostRouter([]string{"example.com"})

	req, _ := http.NewRequest("GET", "/anything", nil)
	req.Host = "evil.example.org"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid host header")
}

func TestAllowedHostsMiddleware_HealthCheckExempt(t *testing.T) {
	r := setupHostRouter([]string{})

	req, _ := http.NewRequest("GET", healthCheckPath, nil)
	req.Host = "10.0.0.12"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimitMiddleware_BlocksOverBudget(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	limiter, err := ratelimit.NewMemoryLimiter(&config.RateLimitSettings{
		Enabled:       true,
		Requests:      2,
		WindowSeconds: 60,
	}, logger)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/token", RateLimitMiddleware(limiter), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("POST", "/token", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	req, _ := http.NewRequest("POST", "/token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many requests")
}
