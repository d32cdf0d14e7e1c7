package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-portal/internal/domain"
)

func directoryRouter(f *fixture) *gin.Engine {
	h := NewDirectoryHandler(f.directory)
	router := gin.New()
	router.GET("/api/v1/authors", h.Authors)
	router.GET("/api/v1/publishers", h.Publishers)
	return router
}

func TestDirectoryHandler(t *testing.T) {
	t.Run("lists authors", func(t *testing.T) {
		f := newFixture(t)
		router := directoryRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return([]domain.Author{{ID: "a1", Name: "Jane"}}, nil)
		f.publishers.EXPECT().List(mock.Anything).Return(nil, nil)

		w := doJSON(t, router, http.MethodGet, "/api/v1/authors", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"authors":[{"id":"a1","name":"Jane"}]}`, w.Body.String())
	})

	t.Run("lists publishers", func(t *testing.T) {
		f := newFixture(t)
		router := directoryRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return(nil, nil)
		f.publishers.EXPECT().List(mock.Anything).Return([]domain.Publisher{{ID: "p1", Name: "Daily"}}, nil)

		w := doJSON(t, router, http.MethodGet, "/api/v1/publishers", nil)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"publishers":[{"id":"p1","name":"Daily"}]}`, w.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t)
		router := directoryRouter(f)

		f.authors.EXPECT().List(mock.Anything).Return(nil, errors.New("down"))

		w := doJSON(t, router, http.MethodGet, "/api/v1/authors", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
