package v1

import (
	"net"
	"net/http"
	"strings"

	"github.com/Renz00/recipe-vault/internal/domain/users"
	"github.com/Renz00/recipe-vault/internal/infrastructure/ratelimit"
	"github.com/gin-gonic/gin"
)

// userIDContextKey is where the auth middleware stores the authenticated
// user's ID for downstream handlers.
const userIDContextKey = "userID"

// healthCheckPath is exempt from Host filtering so container probes work
// without knowing the public host name.
const healthCheckPath = BasePath + "/health-check/"

// TokenAuthMiddleware verifies the Authorization header and stores the
// authenticated user ID on the request context. Both the `Bearer` and the
// legacy `Token` scheme are accepted.
func TokenAuthMiddleware(authService users.UserAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fields := strings.Fields(ctx.GetHeader("Authorization"))
		if len(fields) != 2 || (!strings.EqualFold(fields[0], "Bearer") && !strings.EqualFold(fields[0], "Token")) {
			var errorResponse ErrorResponse
			errorResponse.Message = "authentication credentials were not provided"
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		userID, err := authService.VerifyToken(ctx.Request.Context(), fields[1])
		if err != nil {
			var errorResponse ErrorResponse
			errorResponse.Message = users.ErrInvalidToken.Error()
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse)
			return
		}

		ctx.Set(userIDContextKey, userID)
		ctx.Next()
	}
}

// AllowedHostsMiddleware rejects requests whose Host header is not on the
// allow-list. A `*` entry admits every host; an empty list admits none.
// The health check path is always admitted.
func AllowedHostsMiddleware(allowedHosts []string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.URL.Path == healthCheckPath {
			ctx.Next()
			return
		}

		host := ctx.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}

		for _, allowed := range allowedHosts {
			if allowed == "*" || strings.EqualFold(allowed, host) {
				ctx.Next()
				return
			}
		}

		var errorResponse ErrorResponse
		errorResponse.Message = "invalid host header"
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse)
	}
}

// RateLimitMiddleware throttles requests per client IP. Limiter failures
// never block traffic.
func RateLimitMiddleware(limiter ratelimit.RateLimiter) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		allowed, err := limiter.Allow(ctx.Request.Context(), ctx.ClientIP())
		if err == nil && !allowed {
			var errorResponse ErrorResponse
			errorResponse.Message = "too many requests"
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse)
			return
		}

		ctx.Next()
	}
}
