package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"news-portal/internal/identity"
	"news-portal/internal/logger"
)

const (
	// CallerKey is the context key for the authenticated caller
	CallerKey = "caller"
	// TokenKey is the context key for the caller's bearer token
	TokenKey = "auth_token"
)

// Auth rejects requests without a valid bearer token. The resolved caller
// is stored under CallerKey.
func Auth(provider identity.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)

		caller, err := provider.CurrentCaller(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, identity.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			logger.ErrorContext(c.Request.Context(), "Identity lookup failed", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve caller"})
			return
		}

		c.Set(CallerKey, caller)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetCaller retrieves the authenticated caller from the gin context.
func GetCaller(c *gin.Context) *identity.Caller {
	if v, exists := c.Get(CallerKey); exists {
		if caller, ok := v.(*identity.Caller); ok {
			return caller
		}
	}
	return nil
}

// GetToken retrieves the caller's bearer token from the gin context.
func GetToken(c *gin.Context) string {
	return c.GetString(TokenKey)
}
