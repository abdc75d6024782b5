//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/stretchr/testify/assert"
)

func serviceTestConfig() config.Config {
	return config.Config{
		Catalog: config.CatalogConfig{
			Domain:                         "test.myshopify.com",
			APIToken:                       "test-token",
			APIVersion:                     "2023-10",
			DefaultDensity:                 1.24,
			Timeout:                        10 * time.Second,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Slicer: config.SlicerConfig{
			Binary:            "prusa-slicer",
			ReferenceDensity:  1.24,
			FilamentDiameter:  1.75,
			MinNozzleDiameter: 0.4,
			MaxInfillPercent:  99,
			Timeout:           time.Minute,
		},
		Pricing: config.PricingConfig{
			FineLayerThreshold:  0.08,
			FineNozzleThreshold: 0.4,
			SurchargeMultiplier: 1.2,
		},
	}
}

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name:   "pricing cache stays off unless configured",
			mutate: func(cfg *config.Config) {},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.CatalogClient)
				assert.NotNil(t, components.QuoteService)
				assert.NotNil(t, components.CatalogCircuitBreaker)
				assert.Nil(t, components.PricingCache)
			},
		},
		{
			name: "creates quote pipeline with pricing cache",
			mutate: func(cfg *config.Config) {
				cfg.Catalog.CacheCapacity = 512
				cfg.Catalog.CacheTTL = 5 * time.Minute
				cfg.Catalog.CacheShards = 8
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components.QuoteService)
				assert.NotNil(t, components.PricingCache)
				components.PricingCache.Stop()
			},
		},
		{
			name:   "catalog circuit breaker starts healthy",
			mutate: func(cfg *config.Config) {},
			validate: func(t *testing.T, components *ServiceComponents) {
				stats := components.CatalogCircuitBreaker.GetStats()
				assert.Equal(t, "closed", stats.State)
				assert.True(t, stats.IsHealthy)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := serviceTestConfig()
			tt.mutate(&cfg)

			components := InitializeServices(cfg)

			assert.NotNil(t, components)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}
