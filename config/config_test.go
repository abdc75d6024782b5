package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 2*time.Minute, cfg.Server.RequestTimeout)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, "2023-10", cfg.Catalog.APIVersion)
		assert.Equal(t, 1.24, cfg.Catalog.DefaultDensity)
		assert.Equal(t, "prusa-slicer", cfg.Slicer.Binary)
		assert.Equal(t, 1.24, cfg.Slicer.ReferenceDensity)
		assert.Equal(t, 1.75, cfg.Slicer.FilamentDiameter)
		assert.Equal(t, 0.4, cfg.Slicer.MinNozzleDiameter)
		assert.Equal(t, 99, cfg.Slicer.MaxInfillPercent)
		assert.Equal(t, 0.08, cfg.Pricing.FineLayerThreshold)
		assert.Equal(t, 0.4, cfg.Pricing.FineNozzleThreshold)
		assert.Equal(t, 1.2, cfg.Pricing.SurchargeMultiplier)
		assert.Equal(t, 1.2, cfg.Orders.ListingMarkup)
		assert.Equal(t, "manual-review", cfg.Orders.ReviewTag)
		assert.Equal(t, 0, cfg.Catalog.CacheCapacity)
		assert.False(t, cfg.Auth.Enabled)
		assert.False(t, cfg.Database.Enabled)
	})

	t.Run("pricing cache is opt-in", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CATALOG_CACHE_CAPACITY", "512")
		_ = os.Setenv("CATALOG_CACHE_TTL", "2m")

		cfg := Load()

		assert.Equal(t, 512, cfg.Catalog.CacheCapacity)
		assert.Equal(t, 2*time.Minute, cfg.Catalog.CacheTTL)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("CATALOG_DOMAIN", "shop.example.com")
		_ = os.Setenv("CATALOG_API_TOKEN", "shpat_test")
		_ = os.Setenv("CATALOG_DEFAULT_DENSITY", "1.04")
		_ = os.Setenv("SLICER_BINARY", "slic3r")
		_ = os.Setenv("PRICING_SURCHARGE_MULTIPLIER", "1.5")
		_ = os.Setenv("ORDERS_LISTING_MARKUP", "2.0")
		_ = os.Setenv("AUTH_ENABLED", "true")
		_ = os.Setenv("API_KEYS", "key1,key2")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, "shop.example.com", cfg.Catalog.Domain)
		assert.Equal(t, "shpat_test", cfg.Catalog.APIToken)
		assert.Equal(t, 1.04, cfg.Catalog.DefaultDensity)
		assert.Equal(t, "slic3r", cfg.Slicer.Binary)
		assert.Equal(t, 1.5, cfg.Pricing.SurchargeMultiplier)
		assert.Equal(t, 2.0, cfg.Orders.ListingMarkup)
		assert.True(t, cfg.Auth.Enabled)
		assert.True(t, cfg.Auth.APIKeys["key1"])
		assert.True(t, cfg.Auth.APIKeys["key2"])
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("CATALOG_DEFAULT_DENSITY", "not-a-number")
		_ = os.Setenv("AUTH_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, 1.24, cfg.Catalog.DefaultDensity)
		assert.False(t, cfg.Auth.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	})

	t.Run("appends custom CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com, https://admin.example.com")
		defer os.Clearenv()

		cfg := Load()

		assert.Contains(t, cfg.Server.CORSOrigins, "http://localhost:5173")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://shop.example.com")
		assert.Contains(t, cfg.Server.CORSOrigins, "https://admin.example.com")
	})
}
