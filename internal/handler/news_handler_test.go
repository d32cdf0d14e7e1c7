package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-portal/internal/domain"
	"news-portal/internal/service"
	"news-portal/internal/storage"
)

func newsRouter(f *fixture) *gin.Engine {
	h := NewNewsHandler(f.submission, f.listing)
	router := gin.New()
	router.GET("/api/v1/news", h.List)
	router.GET("/api/v1/news/:id", h.Get)
	router.GET("/api/v1/news/:id/form", h.Form)
	router.POST("/api/v1/news", h.Create)
	router.PUT("/api/v1/news/:id", h.Update)
	router.DELETE("/api/v1/news/:id", h.Delete)
	return router
}

func TestNewsHandler_Create(t *testing.T) {
	t.Run("validation error echoes form without store calls", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		form := domain.SubmissionForm{Body: "text", AuthorName: "Jane", PublisherName: "Daily"}
		w := doJSON(t, router, http.MethodPost, "/api/v1/news", form)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decode[SubmitErrorResponse](t, w)
		assert.Equal(t, "Title is required", resp.Error)
		assert.Equal(t, "validation", resp.Stage)
		assert.Equal(t, form, resp.Form)
	})

	t.Run("multipart submission with image and new entries", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.blobs.EXPECT().
			Upload(mock.Anything, mock.MatchedBy(func(p string) bool {
				return strings.HasSuffix(p, "-front-page.png")
			}), mock.Anything, int64(3), mock.Anything).
			Return(&storage.UploadResult{Path: "articles/9-front-page.png", Size: 3}, nil)
		f.blobs.EXPECT().URL(mock.Anything, "articles/9-front-page.png").Return("/files/articles/9-front-page.png", nil)
		f.authors.EXPECT().
			Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, a *domain.Author) error {
				a.ID = "a-new"
				return nil
			})
		f.publishers.EXPECT().
			Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, p *domain.Publisher) error {
				p.ID = "p-new"
				return nil
			})
		f.news.EXPECT().
			Create(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, n *domain.News) error {
				n.ID = "n1"
				return nil
			})

		body, contentType := multipartBody(t, map[string]string{
			"title":         "Launch",
			"body":          `[{"id":"b1","type":"text","content":"Hi"}]`,
			"authorName":    "Jane",
			"publisherName": "Daily",
		}, ImageFileField, "front page.png", []byte("png"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/news", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[SubmitResponse](t, w)
		assert.Equal(t, "n1", resp.News.ID)
		assert.Equal(t, "/files/articles/9-front-page.png", resp.News.ImageURL())
		assert.Equal(t, "a-new", resp.News.AuthorRef())
		assert.Equal(t, "p-new", resp.News.PublisherRef())
		assert.Equal(t, domain.SubmissionForm{}, resp.Form)
		assert.Equal(t, "/articles", resp.RedirectTo)
		assert.Equal(t, int64(1500), resp.RedirectAfterMS)
	})

	t.Run("upload failure returns bad gateway", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.blobs.EXPECT().
			Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.New("bucket unavailable"))

		body, contentType := multipartBody(t, map[string]string{
			"title": "T", "body": "B", "authorName": "Jane", "publisherName": "Daily",
		}, ImageFileField, "a.png", []byte("png"))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/news", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadGateway, w.Code)
		resp := decode[SubmitErrorResponse](t, w)
		assert.Equal(t, "Failed to upload image: bucket unavailable", resp.Error)
		assert.Equal(t, "T", resp.Form.Title)
	})
}

func TestNewsHandler_Update(t *testing.T) {
	t.Run("missing article returns not found", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return([]domain.Author{{ID: "a1"}}, nil)
		f.publishers.EXPECT().List(mock.Anything).Return([]domain.Publisher{{ID: "p1"}}, nil)
		f.news.EXPECT().Get(mock.Anything, "gone").Return(nil, domain.ErrNotFound)

		w := doJSON(t, router, http.MethodPut, "/api/v1/news/gone", domain.SubmissionForm{
			Title: "T", Body: "B", AuthorID: "a1", PublisherID: "p1",
		})

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := decode[SubmitErrorResponse](t, w)
		assert.Equal(t, "Failed to save article: news not found", resp.Error)
	})

	t.Run("updates article", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return([]domain.Author{{ID: "a1"}}, nil)
		f.publishers.EXPECT().List(mock.Anything).Return([]domain.Publisher{{ID: "p1"}}, nil)
		f.news.EXPECT().Get(mock.Anything, "n1").Return(&domain.News{ID: "n1"}, nil)
		f.news.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		w := doJSON(t, router, http.MethodPut, "/api/v1/news/n1", domain.SubmissionForm{
			Title: "T", Body: "B", AuthorID: "a1", PublisherID: "p1",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "n1", decode[SubmitResponse](t, w).News.ID)
	})
}

func TestNewsHandler_Delete(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		w := doJSON(t, router, http.MethodDelete, "/api/v1/news/n1", nil)

		assert.Equal(t, http.StatusPreconditionRequired, w.Code)
	})

	t.Run("confirmed delete", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)
		f.news.EXPECT().Delete(mock.Anything, "n1").Return(nil).Once()

		w := doJSON(t, router, http.MethodDelete, "/api/v1/news/n1?confirm=true", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)
		f.news.EXPECT().Delete(mock.Anything, "n1").Return(domain.ErrNotFound)

		w := doJSON(t, router, http.MethodDelete, "/api/v1/news/n1?confirm=true", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure includes cause", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)
		f.news.EXPECT().Delete(mock.Anything, "n1").Return(errors.New("deadlock detected"))

		w := doJSON(t, router, http.MethodDelete, "/api/v1/news/n1?confirm=1", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "deadlock detected")
	})
}

func TestNewsHandler_Read(t *testing.T) {
	t.Run("lists articles", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return([]domain.Author{{ID: "a1", Name: "Jane"}}, nil)
		f.publishers.EXPECT().List(mock.Anything).Return(nil, nil)
		f.news.EXPECT().List(mock.Anything).Return([]domain.News{
			{ID: "n1", Title: "T", Body: "![cat](https://x/cat.png)", AuthorID: strPtr("a1")},
		}, nil)

		w := doJSON(t, router, http.MethodGet, "/api/v1/news", nil)

		require.Equal(t, http.StatusOK, w.Code)
		state := decode[service.ListingState](t, w)
		require.Len(t, state.Articles, 1)
		assert.Equal(t, "Jane", state.Articles[0].AuthorName)
		require.Len(t, state.Articles[0].Content, 1)
		assert.Equal(t, "cat", state.Articles[0].Content[0].Alt)
	})

	t.Run("list failure is reported", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return(nil, nil)
		f.publishers.EXPECT().List(mock.Anything).Return(nil, nil)
		f.news.EXPECT().List(mock.Anything).Return(nil, errors.New("too many connections"))

		w := doJSON(t, router, http.MethodGet, "/api/v1/news", nil)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		state := decode[service.ListingState](t, w)
		assert.False(t, state.Loading)
		assert.Contains(t, state.Error, "too many connections")
	})

	t.Run("get missing article", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)
		f.news.EXPECT().Get(mock.Anything, "x").Return(nil, domain.ErrNotFound)

		w := doJSON(t, router, http.MethodGet, "/api/v1/news/x", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("edit form prefill", func(t *testing.T) {
		f := newFixture(t)
		router := newsRouter(f)
		f.news.EXPECT().Get(mock.Anything, "n1").Return(&domain.News{
			ID: "n1", Title: "T", Body: "B", AuthorID: strPtr("a1"),
		}, nil)

		w := doJSON(t, router, http.MethodGet, "/api/v1/news/n1/form", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[FormResponse](t, w)
		assert.Equal(t, "n1", resp.EditingID)
		assert.Equal(t, "a1", resp.Form.AuthorID)
		assert.Empty(t, resp.Form.AuthorName)
	})
}
