package http

import (
	"github.com/gin-gonic/gin"
)

// QuoteRoutes handles quote and order route registration.
type QuoteRoutes struct {
	handler *Handler
}

// NewQuoteRoutes creates a new QuoteRoutes instance.
func NewQuoteRoutes(handler *Handler) *QuoteRoutes {
	return &QuoteRoutes{handler: handler}
}

// RegisterPublicRoutes registers the quote and order endpoints.
func (r *QuoteRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", r.handler.Ping)
	rg.POST("/quote", r.handler.Quote)
	rg.POST("/orders", r.handler.CreateOrder)
}

// GetHandler returns the underlying handler.
func (r *QuoteRoutes) GetHandler() *Handler {
	return r.handler
}
