package middleware

import (
	"pixelpaw/backend/pkg/errors"
	"pixelpaw/backend/pkg/jwt"
	"pixelpaw/backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware checks that the request has a valid JWT and adds claims to the context
func JWTAuthMiddleware(jwtService *jwt.Service, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.Error(errors.NewUnauthorizedError("AUTH_REQUIRED", "Authorization header is required"))
			c.Abort()
			return
		}

		// Strip "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		// Validate token
		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid JWT token", "error", err.Error())
			c.Error(errors.NewUnauthorizedError("INVALID_TOKEN", "Invalid or expired token"))
			c.Abort()
			return
		}

		// Add claims to context
		c.Set("claims", claims)
		c.Set("userId", claims.UserID)
		c.Set("userEmail", claims.Email)

		c.Next()
	}
}
