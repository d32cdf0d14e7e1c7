package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-portal/internal/logger"
	"news-portal/internal/service"
	"news-portal/internal/storage"
)

// UploadHandler handles content image uploads.
type UploadHandler struct {
	uploads service.UploadServiceInterface
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploads service.UploadServiceInterface) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile(UploadFileField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file could not be read"})
		return
	}
	defer file.Close()

	img, err := h.uploads.UploadContentImage(c.Request.Context(), fh.Filename, file, fh.Size)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Failed to upload image: " + err.Error()})
		case errors.Is(err, storage.ErrInvalidPath):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to upload image: " + err.Error()})
		default:
			logger.ErrorContext(c.Request.Context(), "Content image upload failed", "error", err.Error())
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload image: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, img)
}
