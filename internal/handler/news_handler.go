package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-portal/internal/domain"
	"news-portal/internal/logger"
	"news-portal/internal/service"
)

// NewsHandler handles article HTTP requests.
type NewsHandler struct {
	submissions service.SubmissionServiceInterface
	listing     service.ListingServiceInterface
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(submissions service.SubmissionServiceInterface, listing service.ListingServiceInterface) *NewsHandler {
	return &NewsHandler{
		submissions: submissions,
		listing:     listing,
	}
}

// SubmitResponse is returned after a successful submission.
type SubmitResponse struct {
	News            *domain.News          `json:"news"`
	Form            domain.SubmissionForm `json:"form"`
	RedirectTo      string                `json:"redirect_to"`
	RedirectAfterMS int64                 `json:"redirect_after_ms"`
}

// SubmitErrorResponse is returned for a failed submission. Form echoes the
// submitted values so the client can keep them.
type SubmitErrorResponse struct {
	Error string                `json:"error"`
	Stage string                `json:"stage"`
	Form  domain.SubmissionForm `json:"form"`
}

// FormResponse is the edit form prefill.
type FormResponse struct {
	EditingID string                `json:"editing_id"`
	Form      domain.SubmissionForm `json:"form"`
}

// List handles GET /api/v1/news
func (h *NewsHandler) List(c *gin.Context) {
	state := h.listing.Snapshot(c.Request.Context())
	if state.Error != "" {
		c.JSON(http.StatusServiceUnavailable, state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Get handles GET /api/v1/news/:id
func (h *NewsHandler) Get(c *gin.Context) {
	id := c.Param("id")

	view, err := h.listing.Article(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Failed to get article", "news_id", id, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve article"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Form handles GET /api/v1/news/:id/form
func (h *NewsHandler) Form(c *gin.Context) {
	id := c.Param("id")

	form, err := h.submissions.LoadForEdit(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Failed to load article form", "news_id", id, "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load article"})
		return
	}

	c.JSON(http.StatusOK, FormResponse{EditingID: id, Form: *form})
}

// Create handles POST /api/v1/news
func (h *NewsHandler) Create(c *gin.Context) {
	h.submit(c, "", http.StatusCreated)
}

// Update handles PUT /api/v1/news/:id
func (h *NewsHandler) Update(c *gin.Context) {
	h.submit(c, c.Param("id"), http.StatusOK)
}

func (h *NewsHandler) submit(c *gin.Context, editingID string, successStatus int) {
	var form domain.SubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return
	}

	req := service.SubmitRequest{Form: form, EditingID: editingID}

	if fh, err := c.FormFile(ImageFileField); err == nil {
		file, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image_file could not be read"})
			return
		}
		defer file.Close()
		req.Image = attachment(fh, file)
	}

	result, err := h.submissions.Submit(c.Request.Context(), req)
	if err != nil {
		var subErr *service.SubmissionError
		if errors.As(err, &subErr) {
			if subErr.Stage != service.StageValidation {
				logger.ErrorContext(c.Request.Context(), "Submission failed",
					"stage", string(subErr.Stage), "error", subErr.Message)
			}
			c.JSON(submissionStatus(subErr), SubmitErrorResponse{
				Error: subErr.Message,
				Stage: string(subErr.Stage),
				Form:  form,
			})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Submission failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, SubmitErrorResponse{Error: "Unknown error", Form: form})
		return
	}

	c.JSON(successStatus, SubmitResponse{
		News:            result.News,
		Form:            result.Form,
		RedirectTo:      result.RedirectTo,
		RedirectAfterMS: result.RedirectAfter.Milliseconds(),
	})
}

// Delete handles DELETE /api/v1/news/:id?confirm=true
func (h *NewsHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.listing.Delete(c.Request.Context(), id, confirmed)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, service.ErrConfirmationRequired):
		c.JSON(http.StatusPreconditionRequired, gin.H{"error": "Are you sure you want to delete this article? Repeat with confirm=true"})
	case errors.Is(err, service.ErrDeleteInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "delete already in progress"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article: " + err.Error()})
	}
}

func attachment(fh *multipart.FileHeader, file multipart.File) *service.Attachment {
	return &service.Attachment{
		Filename: fh.Filename,
		Size:     fh.Size,
		Reader:   file,
	}
}
