package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const copyChunkSize = 32 * 1024

// LocalStore keeps blobs on the local filesystem. Files are served from
// baseURL by the HTTP layer.
type LocalStore struct {
	root     string
	baseURL  string
	maxBytes int64
}

// NewLocalStore creates a LocalStore rooted at dir, creating it if needed.
func NewLocalStore(dir, baseURL string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir: %w", err)
	}
	return &LocalStore{
		root:     dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// Root returns the directory blobs are stored in.
func (s *LocalStore) Root() string {
	return s.root
}

// Upload writes r to key. The file only becomes visible once fully written.
// size may be -1 when unknown; the size limit is enforced either way.
func (s *LocalStore) Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress ProgressFunc) (*UploadResult, error) {
	if size > s.maxBytes {
		return nil, ErrTooLarge
	}
	dst, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, fmt.Errorf("create blob parent: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	written, err := copyWithProgress(ctx, tmp, io.LimitReader(r, s.maxBytes+1), size, onProgress)
	if err != nil {
		return nil, err
	}
	if written > s.maxBytes {
		return nil, ErrTooLarge
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return nil, fmt.Errorf("store blob: %w", err)
	}

	return &UploadResult{Path: key, Size: written}, nil
}

// URL returns the public URL of a stored blob.
func (s *LocalStore) URL(_ context.Context, key string) (string, error) {
	dst, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dst); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrBlobNotFound
		}
		return "", fmt.Errorf("stat blob: %w", err)
	}

	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + "/" + strings.Join(segments, "/"), nil
}

// resolve maps a key to a file path inside the root.
func (s *LocalStore) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return "", ErrInvalidPath
	}
	clean := path.Clean(key)
	if clean != key || clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return "", ErrInvalidPath
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}

func copyWithProgress(ctx context.Context, dst io.Writer, src io.Reader, total int64, onProgress ProgressFunc) (int64, error) {
	buf := make([]byte, copyChunkSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, fmt.Errorf("write blob: %w", err)
			}
			written += int64(n)
			if onProgress != nil {
				onProgress(written, total)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("read upload: %w", readErr)
		}
	}
}
