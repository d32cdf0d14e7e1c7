package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Version is reported by the health endpoint.
const Version = "1.0.0"

const (
	// ImageFileField is the multipart field carrying a featured image.
	ImageFileField = "image_file"
	// UploadFileField is the multipart field carrying a content image.
	UploadFileField = "file"
)
