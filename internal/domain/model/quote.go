// Package model defines the core domain entities for the print quote service.
package model

import "math"

// PrintParameters holds the print settings a customer selected for a model.
//
// @Description Print settings used for slicing and pricing
// @Example {"infill": 20, "layer_height": 0.2, "nozzle_diameter": 0.4}
type PrintParameters struct {
	// Infill is the interior fill density as a percentage (0-100)
	Infill int `json:"infill" example:"20"`
	// LayerHeight is the print layer height in millimeters
	LayerHeight float64 `json:"layer_height" example:"0.2"`
	// NozzleDiameter is the nozzle diameter in millimeters
	NozzleDiameter float64 `json:"nozzle_diameter" example:"0.4"`
}

// QuoteRequest is the validated, immutable input to the quote pipeline.
// FileName refers to the staged geometry file; MaterialRef and VariantRef
// are opaque catalog references (VariantRef may be empty).
type QuoteRequest struct {
	FileName    string
	MaterialRef string
	VariantRef  string
	Parameters  PrintParameters
}

// MaterialPricing holds the per-material figures resolved from the catalog.
// Fetched fresh per request; never cached.
type MaterialPricing struct {
	// UnitPrice is the price in currency units per gram of material.
	UnitPrice float64 `json:"unit_price"`
	// Density is the filament density in grams per cubic centimeter.
	Density float64 `json:"density"`
}

// SliceResult holds the estimated material mass produced by the slicing backend.
type SliceResult struct {
	// Grams is the estimated material mass in grams.
	Grams float64 `json:"grams"`
	// Backend names the slicing backend that produced the estimate.
	Backend string `json:"backend,omitempty"`
}

// Quote is the complete result of a quote computation. It is derived,
// immutable, and returned to the caller; it is not persisted unless the
// customer proceeds to order creation.
//
// @Description Quote for a custom 3D-printed part
// @Example {"file": "bracket.stl", "grams": 42.17, "base_price": 35.7, "price": 42.84, "material": "gid://shopify/Product/42", "price_per_gram": 0.85, "density": 1.24}
type Quote struct {
	// File is the original name of the uploaded model file
	File string `json:"file" example:"bracket.stl"`
	// Grams is the estimated material mass, rounded to 2 decimals for display
	Grams float64 `json:"grams" example:"42.17"`
	// BaseMass is the whole-gram mass the base price was computed from
	BaseMass float64 `json:"base_mass" example:"42"`
	// BasePrice is mass (rounded to whole grams) times unit price, rounded to 2 decimals
	BasePrice float64 `json:"base_price" example:"35.70"`
	// Price is the final price after quality surcharges
	Price float64 `json:"price" example:"42.84"`
	// Material echoes the requested material reference
	Material string `json:"material" example:"gid://shopify/Product/42"`
	// Variant echoes the requested variant reference, if any
	Variant string `json:"variant,omitempty" example:"gid://shopify/ProductVariant/77"`
	// PricePerGram is the resolved unit price used for the computation
	PricePerGram float64 `json:"price_per_gram" example:"0.85"`
	// Density is the resolved filament density used for the computation
	Density float64 `json:"density" example:"1.24"`
	// Parameters echoes the print parameters used
	Parameters PrintParameters `json:"parameters"`
} // @name Quote

// Round2 rounds a value to two decimal places. Quote prices and displayed
// masses always go through this helper so every call site rounds identically.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
