// Package metrics provides Prometheus metrics collection for the print quote service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// QuotesTotal tracks total quote computations.
	QuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotes_total",
			Help: "Total number of quote computations",
		},
		[]string{"status"},
	)

	// QuoteDuration tracks end-to-end quote computation duration, slicing included.
	QuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quote_duration_seconds",
			Help:    "Quote computation duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
	)

	// SliceDuration tracks slicing duration by backend.
	SliceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "slice_duration_seconds",
			Help:    "Mass estimation duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 5, 15, 30, 60, 120},
		},
		[]string{"backend"},
	)

	// SlicesTotal tracks mass estimations by backend and outcome.
	SlicesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slices_total",
			Help: "Total number of mass estimations",
		},
		[]string{"backend", "status"},
	)

	// CatalogRequestsTotal tracks outbound catalog API calls by operation and outcome.
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of outbound catalog API requests",
		},
		[]string{"operation", "result"},
	)

	// OrdersTotal tracks order creations by outcome.
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "orders_total",
			Help: "Total number of order creations",
		},
		[]string{"status"},
	)

	// CacheOperationsTotal tracks pricing cache operations by type and result.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_cache_operations_total",
			Help: "Total number of pricing cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordQuote records metrics for a quote computation.
func RecordQuote(duration time.Duration, status string) {
	QuoteDuration.Observe(duration.Seconds())
	QuotesTotal.WithLabelValues(status).Inc()
}

// RecordSlice records metrics for a mass estimation.
func RecordSlice(backend string, duration time.Duration, status string) {
	SliceDuration.WithLabelValues(backend).Observe(duration.Seconds())
	SlicesTotal.WithLabelValues(backend, status).Inc()
}

// RecordCatalogRequest records metrics for an outbound catalog API call.
func RecordCatalogRequest(operation, result string) {
	CatalogRequestsTotal.WithLabelValues(operation, result).Inc()
}

// RecordOrder records metrics for an order creation.
func RecordOrder(status string) {
	OrdersTotal.WithLabelValues(status).Inc()
}

// RecordCacheOperation records metrics for a pricing cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
