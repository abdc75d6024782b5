// Package catalog provides the client for the external commerce catalog:
// material price and density resolution, and listing creation for accepted
// orders.
package catalog

import (
	"context"
	"errors"

	"github.com/guttosm/print-quote-service/internal/domain/model"
)

var (
	// ErrUnavailable is returned when a price lookup fails because the
	// catalog API is unreachable or returned a non-success status. It is
	// fatal to the quote request. Density lookup failures are never
	// surfaced as this error; they downgrade to the default density.
	ErrUnavailable = errors.New("catalog unavailable")

	// ErrInvalidReference is returned when a supplied material or variant
	// reference cannot be parsed.
	ErrInvalidReference = errors.New("invalid catalog reference")
)

// Client defines the catalog operations the quote and order pipelines
// consume. Implementations are stateless per call and fetch pricing fresh
// for every request; any caching is layered on by the caller.
type Client interface {
	// ResolveMaterialPricing resolves a material reference, and optionally a
	// variant reference, to a unit price (currency per gram) and a filament
	// density (g/cm³). A variant reference takes precedence over the
	// material reference for both price and density. A material without
	// variants yields a unit price of 0.0, which is a degenerate case, not
	// an error.
	ResolveMaterialPricing(ctx context.Context, materialRef, variantRef string) (model.MaterialPricing, error)

	// CreateListing creates a catalog listing for an accepted order.
	// Publishing and image attachment are fire-and-forget sub-steps: their
	// failures are logged and do not fail the creation.
	CreateListing(ctx context.Context, input ListingInput) (*Listing, error)
}

// ListingInput holds everything needed to create a catalog listing for an
// accepted order. Price is the final listing price; callers apply any markup
// before the call.
type ListingInput struct {
	Title         string
	Description   string
	CustomerEmail string
	Tags          []string
	Price         float64
	Grams         float64
	// Image is an optional screenshot of the model, attached to the
	// listing when present.
	Image []byte
}

// Listing identifies a created catalog listing.
type Listing struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
}
