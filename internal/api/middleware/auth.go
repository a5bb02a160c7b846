package middleware

import (
	"net/http"
	"strings"

	"bookmore/internal/api/dto"
	"bookmore/internal/apperrors"
	"bookmore/internal/security"

	"github.com/gin-gonic/gin"
)

// TokenVerifier resolves a token string to the identity it was issued for.
type TokenVerifier interface {
	Verify(tokenString string) (*security.Claims, error)
}

// AuthMiddleware checks for a valid Bearer token in the Authorization header
// and stores the caller identity in the gin context.
func AuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortInvalidToken(c, "missing authorization header")
			return
		}

		// Expected format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortInvalidToken(c, "invalid authorization header format")
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			abortInvalidToken(c, "invalid token")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func abortInvalidToken(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.Error(string(apperrors.InvalidToken), message))
}

// CallerID returns the authenticated user id stored by AuthMiddleware.
func CallerID(c *gin.Context) (int64, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CallerEmail returns the authenticated email stored by AuthMiddleware.
func CallerEmail(c *gin.Context) (string, bool) {
	value, exists := c.Get("email")
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
