// Package storage provides the blob store that holds uploaded article images.
package storage

import (
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"time"
)

// ArticlesPrefix is the key prefix for images uploaded with articles.
const ArticlesPrefix = "articles/"

var (
	// ErrInvalidPath is returned for empty keys or keys escaping the store root.
	ErrInvalidPath = errors.New("invalid blob path")
	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = errors.New("upload exceeds size limit")
	// ErrBlobNotFound is returned by URL for keys that were never uploaded.
	ErrBlobNotFound = errors.New("blob not found")
)

// ProgressFunc receives the number of bytes written so far and the expected
// total, or -1 when the total is unknown.
type ProgressFunc func(written, total int64)

// UploadResult describes a completed upload.
type UploadResult struct {
	Path string
	Size int64
}

// BlobStore accepts uploads and returns retrievable URLs for them.
type BlobStore interface {
	Upload(ctx context.Context, path string, r io.Reader, size int64, onProgress ProgressFunc) (*UploadResult, error)
	URL(ctx context.Context, path string) (string, error)
}

// ArticleImagePath builds the key for an uploaded article image:
// articles/<unix-ms>-<filename with spaces replaced by hyphens>.
func ArticleImagePath(now time.Time, filename string) string {
	name := strings.ReplaceAll(baseName(filename), " ", "-")
	return ArticlesPrefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
}

// baseName strips any directory part a client may send with the filename.
func baseName(filename string) string {
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		filename = filename[i+1:]
	}
	if filename == "" {
		return "upload"
	}
	return filename
}
