// Package config provides configuration management for the print quote service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Slicer   SlicerConfig
	Pricing  PricingConfig
	Orders   OrdersConfig
	Upload   UploadConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	// RequestTimeout bounds the total handling time of a request; slicing
	// large models is the slowest path it has to accommodate.
	RequestTimeout time.Duration
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CatalogConfig holds external catalog (commerce platform) configuration.
type CatalogConfig struct {
	// Domain is the shop domain, e.g. "example.myshopify.com".
	Domain string
	// APIToken is the admin API access token.
	APIToken string
	// APIVersion is the admin API version segment, e.g. "2023-10".
	APIVersion string
	// DefaultDensity is substituted when the catalog carries no usable
	// density metadata for a material, in g/cm³.
	DefaultDensity float64
	// Timeout bounds each outbound catalog request.
	Timeout time.Duration
	// CircuitBreaker configuration for price lookups.
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
	// Pricing cache configuration. Disabled by default so every quote sees
	// live catalog pricing; set CacheCapacity > 0 to keep repeat quotes off
	// the catalog API.
	CacheCapacity int
	CacheTTL      time.Duration
	CacheShards   int
}

// SlicerConfig holds slicing engine configuration.
type SlicerConfig struct {
	// Binary is the slicing engine executable looked up on PATH at startup.
	Binary string
	// ReferenceDensity is the density the heuristic fallback scales against,
	// in g/cm³.
	ReferenceDensity float64
	// FilamentDiameter is the filament diameter passed to the engine, in mm.
	FilamentDiameter float64
	// MinNozzleDiameter floors the nozzle diameter passed to the engine, in mm.
	MinNozzleDiameter float64
	// MaxInfillPercent caps the infill passed to the engine; the engine
	// mishandles 100%.
	MaxInfillPercent int
	// Timeout bounds a single engine invocation.
	Timeout time.Duration
}

// PricingConfig holds quote pricing configuration.
type PricingConfig struct {
	// FineLayerThreshold is the layer height (mm) at or below which the
	// fine-detail surcharge applies.
	FineLayerThreshold float64
	// FineNozzleThreshold is the nozzle diameter (mm) below which the
	// fine-nozzle surcharge applies.
	FineNozzleThreshold float64
	// SurchargeMultiplier is applied once per triggered surcharge rule.
	SurchargeMultiplier float64
}

// OrdersConfig holds order/listing creation configuration.
type OrdersConfig struct {
	// ListingMarkup is the multiplier applied to the quoted price before
	// the catalog listing is created.
	ListingMarkup float64
	// ReviewTag is attached to listings whose geometry was flagged complex.
	ReviewTag string
}

// UploadConfig holds upload staging configuration.
type UploadConfig struct {
	// MaxFileSize limits the uploaded model size in bytes.
	MaxFileSize int64
	// TempDir is the base directory for per-request staging directories.
	// Empty means the OS default.
	TempDir string
}

// AuthConfig holds service authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 2*time.Minute),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			Domain:                         getEnv("CATALOG_DOMAIN", ""),
			APIToken:                       getEnv("CATALOG_API_TOKEN", ""),
			APIVersion:                     getEnv("CATALOG_API_VERSION", "2023-10"),
			DefaultDensity:                 getEnvFloat("CATALOG_DEFAULT_DENSITY", 1.24),
			Timeout:                        getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
			CircuitBreakerFailureThreshold: getEnvInt("CATALOG_CB_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CATALOG_CB_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CATALOG_CB_TIMEOUT", 30*time.Second),
			CacheCapacity:                  getEnvInt("CATALOG_CACHE_CAPACITY", 0),
			CacheTTL:                       getEnvDuration("CATALOG_CACHE_TTL", 5*time.Minute),
			CacheShards:                    getEnvInt("CATALOG_CACHE_SHARDS", 16),
		},
		Slicer: SlicerConfig{
			Binary:            getEnv("SLICER_BINARY", "prusa-slicer"),
			ReferenceDensity:  getEnvFloat("SLICER_REFERENCE_DENSITY", 1.24),
			FilamentDiameter:  getEnvFloat("SLICER_FILAMENT_DIAMETER", 1.75),
			MinNozzleDiameter: getEnvFloat("SLICER_MIN_NOZZLE_DIAMETER", 0.4),
			MaxInfillPercent:  getEnvInt("SLICER_MAX_INFILL_PERCENT", 99),
			Timeout:           getEnvDuration("SLICER_TIMEOUT", 5*time.Minute),
		},
		Pricing: PricingConfig{
			FineLayerThreshold:  getEnvFloat("PRICING_FINE_LAYER_THRESHOLD", 0.08),
			FineNozzleThreshold: getEnvFloat("PRICING_FINE_NOZZLE_THRESHOLD", 0.4),
			SurchargeMultiplier: getEnvFloat("PRICING_SURCHARGE_MULTIPLIER", 1.2),
		},
		Orders: OrdersConfig{
			ListingMarkup: getEnvFloat("ORDERS_LISTING_MARKUP", 1.2),
			ReviewTag:     getEnv("ORDERS_REVIEW_TAG", "manual-review"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvInt64("UPLOAD_MAX_FILE_SIZE", 100<<20),
			TempDir:     getEnv("UPLOAD_TEMP_DIR", ""),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "print_quote_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
