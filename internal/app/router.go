// Package app provides router configuration.
package app

import (
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/http"
	"github.com/guttosm/print-quote-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	serviceComponents *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	// Order creation needs persistence; without a database the endpoint
	// stays registered but fails fast at the service layer.
	var orderService service.OrderService
	if dbComponents != nil && dbComponents.OrdersRepo != nil {
		orderService = service.NewOrderService(dbComponents.OrdersRepo, serviceComponents.CatalogClient, cfg.Orders)
	}

	handler := http.NewHandler(serviceComponents.QuoteService, orderService, cfg.Upload)
	healthHandler := http.NewHealthHandler()

	// Register circuit breakers for health monitoring
	if serviceComponents.CatalogCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("catalog", serviceComponents.CatalogCircuitBreaker)
	}
	if dbComponents != nil {
		if dbComponents.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RequestTimeout:    cfg.Server.RequestTimeout,
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
