// Package service contains the business logic of the print quote service.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/print-quote-service/internal/catalog"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/service/cache"
	"github.com/guttosm/print-quote-service/internal/slicer"
)

// QuoteService defines the quote computation pipeline.
// This interface can be mocked for testing.
type QuoteService interface {
	// Quote prices the staged geometry file for the given request. The
	// geometry file must be readable for the duration of the call; the
	// caller owns its lifecycle.
	Quote(ctx context.Context, geometryPath string, req model.QuoteRequest) (*model.Quote, error)
}

// quoteService wires the catalog client, the slicing backend and the pricing
// engine into the quote pipeline. Each call is stateless and independent.
type quoteService struct {
	catalog      catalog.Client
	backend      slicer.Backend
	pricing      *PricingEngine
	pricingCache cache.Cache
}

// QuoteOption configures the quote service.
type QuoteOption func(*quoteService)

// WithPricingCache enables caching of resolved material pricing. Repeat
// quotes for the same material then skip the catalog round trip until the
// cache entry expires.
func WithPricingCache(c cache.Cache) QuoteOption {
	return func(s *quoteService) {
		s.pricingCache = c
	}
}

// NewQuoteService creates the quote pipeline.
func NewQuoteService(catalogClient catalog.Client, backend slicer.Backend, pricing *PricingEngine, opts ...QuoteOption) QuoteService {
	s := &quoteService{
		catalog: catalogClient,
		backend: backend,
		pricing: pricing,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Quote implements QuoteService. Pricing and density are resolved before
// slicing because the slicing backend needs the filament density; both
// results then feed the pricing engine.
func (s *quoteService) Quote(ctx context.Context, geometryPath string, req model.QuoteRequest) (*model.Quote, error) {
	start := time.Now()

	pricing, err := s.resolvePricing(ctx, req.MaterialRef, req.VariantRef)
	if err != nil {
		metrics.RecordQuote(time.Since(start), quoteStatus(err))
		return nil, err
	}

	logger.Logger().Debug().
		Str("material", req.MaterialRef).
		Str("variant", req.VariantRef).
		Float64("price_per_gram", pricing.UnitPrice).
		Float64("density", pricing.Density).
		Msg("Material pricing resolved")

	grams, err := s.backend.EstimateMass(ctx, geometryPath, slicer.Params{
		InfillPercent:   req.Parameters.Infill,
		LayerHeight:     req.Parameters.LayerHeight,
		NozzleDiameter:  req.Parameters.NozzleDiameter,
		FilamentDensity: pricing.Density,
	})
	if err != nil {
		metrics.RecordQuote(time.Since(start), quoteStatus(err))
		return nil, err
	}

	quote := s.pricing.ComputeQuote(grams, pricing.UnitPrice, req.Parameters.LayerHeight, req.Parameters.NozzleDiameter)
	quote.File = req.FileName
	quote.Material = req.MaterialRef
	quote.Variant = req.VariantRef
	quote.Density = pricing.Density
	quote.Parameters = req.Parameters

	metrics.RecordQuote(time.Since(start), "success")
	return &quote, nil
}

// resolvePricing returns material pricing from the cache when enabled,
// falling back to the catalog on a miss.
func (s *quoteService) resolvePricing(ctx context.Context, materialRef, variantRef string) (model.MaterialPricing, error) {
	key := materialRef + "|" + variantRef

	if s.pricingCache != nil {
		if pricing, ok := s.pricingCache.Get(key); ok {
			return pricing, nil
		}
	}

	pricing, err := s.catalog.ResolveMaterialPricing(ctx, materialRef, variantRef)
	if err != nil {
		return model.MaterialPricing{}, err
	}

	if s.pricingCache != nil {
		s.pricingCache.Set(key, pricing)
	}
	return pricing, nil
}

// quoteStatus maps pipeline errors to a metrics label.
func quoteStatus(err error) string {
	var engineErr *slicer.EngineError
	switch {
	case errors.Is(err, catalog.ErrUnavailable):
		return "catalog_unavailable"
	case errors.Is(err, catalog.ErrInvalidReference):
		return "invalid_reference"
	case errors.As(err, &engineErr):
		return "slicing_failed"
	case errors.Is(err, slicer.ErrWeightNotFound):
		return "slicing_unparseable"
	default:
		return "error"
	}
}
