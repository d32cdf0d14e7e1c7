package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"news-portal/internal/logger"
	"news-portal/internal/metrics"
	"news-portal/internal/storage"
)

// UploadedImage is a stored image referenced from an article body.
type UploadedImage struct {
	Path string `json:"path"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// UploadService stores images inserted into image blocks.
type UploadService struct {
	blobs storage.BlobStore
	now   func() time.Time
}

// NewUploadService creates a new UploadService.
func NewUploadService(blobs storage.BlobStore) *UploadService {
	return &UploadService{blobs: blobs, now: time.Now}
}

// UploadContentImage stores the image under the articles prefix and returns
// its retrievable URL.
func (s *UploadService) UploadContentImage(ctx context.Context, filename string, r io.Reader, size int64) (*UploadedImage, error) {
	path := storage.ArticleImagePath(s.now(), filename)
	log := logger.FromContext(ctx).With(slog.String("path", path))

	res, err := s.blobs.Upload(ctx, path, r, size, func(written, total int64) {
		log.Debug("Upload progress", slog.Int64("written", written), slog.Int64("total", total))
	})
	if err != nil {
		metrics.ObserveUpload("content", "error", 0)
		return nil, fmt.Errorf("upload image: %w", err)
	}
	metrics.ObserveUpload("content", "success", res.Size)

	url, err := s.blobs.URL(ctx, res.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve url: %w", err)
	}

	log.Info("Content image uploaded", slog.Int64("size", res.Size))
	return &UploadedImage{Path: res.Path, URL: url, Size: res.Size}, nil
}
