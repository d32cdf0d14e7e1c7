package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-portal/internal/logger"
	"news-portal/internal/service"
)

// DirectoryHandler serves author and publisher lists for the article form.
type DirectoryHandler struct {
	directory service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(directory service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{directory: directory}
}

// Authors handles GET /api/v1/authors
func (h *DirectoryHandler) Authors(c *gin.Context) {
	dir, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"authors": dir.Authors})
}

// Publishers handles GET /api/v1/publishers
func (h *DirectoryHandler) Publishers(c *gin.Context) {
	dir, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"publishers": dir.Publishers})
}

func (h *DirectoryHandler) load(c *gin.Context) (*service.Directory, bool) {
	dir, err := h.directory.Load(c.Request.Context())
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to load directory", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load directory"})
		return nil, false
	}
	return dir, true
}
