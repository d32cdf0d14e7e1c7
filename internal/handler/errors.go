package handler

import (
	"errors"
	"net/http"

	"news-portal/internal/domain"
	"news-portal/internal/service"
)

// submissionStatus maps a failed submission stage to an HTTP status.
func submissionStatus(err *service.SubmissionError) int {
	switch err.Stage {
	case service.StageValidation:
		return http.StatusUnprocessableEntity
	case service.StageUpload:
		return http.StatusBadGateway
	case service.StageNews:
		if errors.Is(err, domain.ErrNotFound) {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
