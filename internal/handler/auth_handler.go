package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-portal/internal/identity"
	"news-portal/internal/middleware"
)

// AuthHandler exposes the current caller and sign-out.
type AuthHandler struct {
	provider identity.Provider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(provider identity.Provider) *AuthHandler {
	return &AuthHandler{provider: provider}
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	caller := middleware.GetCaller(c)
	if caller == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	c.JSON(http.StatusOK, caller)
}

// SignOut handles POST /api/v1/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.provider.SignOut(c.Request.Context(), middleware.GetToken(c)); err != nil {
		if errors.Is(err, identity.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	c.Status(http.StatusNoContent)
}
