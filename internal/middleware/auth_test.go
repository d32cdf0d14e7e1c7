package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"news-portal/internal/identity"
	"news-portal/internal/middleware"
)

type failingProvider struct{}

func (failingProvider) CurrentCaller(context.Context, string) (*identity.Caller, error) {
	return nil, errors.New("directory offline")
}

func (failingProvider) SignOut(context.Context, string) error { return nil }

func newAuthRouter(provider identity.Provider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.Auth(provider))
	router.GET("/private", func(c *gin.Context) {
		caller := middleware.GetCaller(c)
		c.JSON(http.StatusOK, gin.H{"username": caller.Username, "token": middleware.GetToken(c)})
	})
	return router
}

func TestAuth(t *testing.T) {
	provider := identity.NewTokenProvider(map[string]string{"secret": "editor"})

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid bearer token", "Bearer secret", http.StatusOK},
		{"scheme is case insensitive", "bearer secret", http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic secret", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthRouter(provider)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"username":"editor","token":"secret"}`, w.Body.String())
			}
		})
	}
}

func TestAuth_ProviderFailure(t *testing.T) {
	router := newAuthRouter(failingProvider{})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetCaller_ReturnsNilWhenNotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, middleware.GetCaller(c))
	assert.Empty(t, middleware.GetToken(c))
}
