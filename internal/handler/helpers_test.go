package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"news-portal/internal/live"
	"news-portal/internal/mocks"
	"news-portal/internal/service"
	"news-portal/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	news       *mocks.MockNewsRepository
	authors    *mocks.MockAuthorRepository
	publishers *mocks.MockPublisherRepository
	blobs      *mocks.MockBlobStore
	feed       *live.Feed
	listing    *service.ListingService
	directory  *service.DirectoryService
	submission *service.SubmissionService
	uploads    *service.UploadService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		news:       mocks.NewMockNewsRepository(t),
		authors:    mocks.NewMockAuthorRepository(t),
		publishers: mocks.NewMockPublisherRepository(t),
		blobs:      mocks.NewMockBlobStore(t),
	}
	f.feed = live.NewFeed(f.news)
	f.directory = service.NewDirectoryService(f.authors, f.publishers)
	f.listing = service.NewListingService(f.news, f.directory, f.feed)
	f.submission = service.NewSubmissionService(f.news, f.authors, f.publishers, f.blobs, validator.NewValidator(), 1500*time.Millisecond)
	f.uploads = service.NewUploadService(f.blobs)
	return f
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func strPtr(s string) *string { return &s }

