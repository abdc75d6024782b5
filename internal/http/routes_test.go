package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewQuoteRoutes(t *testing.T) {
	handler := newTestHandler(t)
	routes := NewQuoteRoutes(handler)

	assert.NotNil(t, routes)
	assert.Equal(t, handler, routes.GetHandler())
}

func TestQuoteRoutes_RegisterPublicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	api := router.Group("/api")
	NewQuoteRoutes(newTestHandler(t)).RegisterPublicRoutes(api)

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/ping"},
		{http.MethodPost, "/api/quote"},
		{http.MethodPost, "/api/orders"},
	}

	for _, e := range endpoints {
		req := httptest.NewRequest(e.method, e.path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.NotEqual(t, http.StatusNotFound, w.Code, "%s %s should be registered", e.method, e.path)
	}
}
