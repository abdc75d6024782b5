package cache

import "github.com/guttosm/print-quote-service/internal/domain/model"

// Cache defines the interface for pricing cache operations.
type Cache interface {
	Get(key string) (model.MaterialPricing, bool)
	Set(key string, value model.MaterialPricing)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
