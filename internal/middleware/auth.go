package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/handlers"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/requestdata"
	"github.com/connectus-hq/connectus-backend/internal/services"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLog := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLog, authService: authService}
}

// RequireAuth locates a bearer credential (Authorization header first, then
// the token cookie), validates it, and attaches the identity to the request
// context. Missing or invalid credentials are an authentication failure.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			handlers.AbortUnauthorized(c, "no token provided")
			return
		}
		ctx, err := am.authService.SetContextFromToken(c.Request.Context(), tokenString)
		if err != nil {
			handlers.AbortUnauthorized(c, "invalid token")
			return
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAdmin gates routes on authority. It assumes RequireAuth already ran;
// a valid identity without admin authority is an authorization failure, not
// an authentication one.
func (am *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		if rd == nil {
			handlers.AbortUnauthorized(c, "no token provided")
			return
		}
		if rd.Authority < types.AuthorityAdmin {
			handlers.AbortForbidden(c, "admin only")
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if cookieToken, err := c.Cookie("token"); err == nil && cookieToken != "" {
		return cookieToken
	}
	return ""
}
