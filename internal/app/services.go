// Package app provides service initialization.
package app

import (
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/catalog"
	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/guttosm/print-quote-service/internal/service/cache"
	"github.com/guttosm/print-quote-service/internal/slicer"
)

// ServiceComponents holds the quote pipeline components.
type ServiceComponents struct {
	CatalogClient         catalog.Client
	QuoteService          service.QuoteService
	CatalogCircuitBreaker *circuitbreaker.CircuitBreaker
	PricingCache          cache.Cache
}

// InitializeServices wires the catalog client, slicing backend and pricing
// engine into the quote service.
func InitializeServices(cfg config.Config) *ServiceComponents {
	catalogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.Catalog.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.Catalog.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.Catalog.CircuitBreakerTimeout,
		Name:             "catalog",
	})

	catalogClient := catalog.NewShopifyClient(cfg.Catalog, catalog.WithCircuitBreaker(catalogCB))

	backend := slicer.Detect(cfg.Slicer)
	pricing := service.NewPricingEngine(cfg.Pricing)

	var opts []service.QuoteOption
	var pricingCache cache.Cache
	if cfg.Catalog.CacheCapacity > 0 {
		pricingCache = service.NewShardedCache(cfg.Catalog.CacheCapacity, cfg.Catalog.CacheTTL, cfg.Catalog.CacheShards)
		opts = append(opts, service.WithPricingCache(pricingCache))
	}

	quoteService := service.NewQuoteService(catalogClient, backend, pricing, opts...)

	return &ServiceComponents{
		CatalogClient:         catalogClient,
		QuoteService:          quoteService,
		CatalogCircuitBreaker: catalogCB,
		PricingCache:          pricingCache,
	}
}
