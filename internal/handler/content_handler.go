package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-portal/internal/content"
	"news-portal/internal/domain"
	"news-portal/internal/validator"
)

// ContentHandler previews article bodies.
type ContentHandler struct {
	validator *validator.Validator
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(v *validator.Validator) *ContentHandler {
	return &ContentHandler{validator: v}
}

// RenderRequest carries either a stored body string or editor blocks.
type RenderRequest struct {
	Body   *string        `json:"body"`
	Blocks []domain.Block `json:"blocks"`
}

// RenderResponse is a rendered body preview.
type RenderResponse struct {
	Mode   content.Mode            `json:"mode"`
	Body   string                  `json:"body"`
	Blocks []content.RenderedBlock `json:"blocks"`
}

// Render handles POST /api/v1/content/render
func (h *ContentHandler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var raw string
	switch {
	case req.Blocks != nil:
		if violations := h.validator.ValidateBlocks(req.Blocks); len(violations) > 0 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid blocks", "violations": violations})
			return
		}
		encoded, err := content.Encode(req.Blocks)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "blocks could not be encoded"})
			return
		}
		raw = encoded
	case req.Body != nil:
		raw = *req.Body
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "body or blocks is required"})
		return
	}

	body := content.Parse(raw)
	c.JSON(http.StatusOK, RenderResponse{
		Mode:   body.Mode(),
		Body:   raw,
		Blocks: content.Render(body),
	})
}

// Embed handles GET /api/v1/content/embed?url=
func (h *ContentHandler) Embed(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": raw, "embed_url": content.EmbedURL(raw)})
}
