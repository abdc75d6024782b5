// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"github.com/guttosm/print-quote-service/internal/domain/model"
)

// QuoteForm represents the multipart form fields of the quote endpoint.
// The model file itself is read separately from the multipart body.
//
// Infill is a percentage (0-100). LayerHeight and NozzleDiameter are in
// millimeters; NozzleDiameter defaults to 0.4 when omitted.
//
// @Description Print parameters accompanying a model file upload
type QuoteForm struct {
	// Material is the catalog reference of the requested material.
	Material string `form:"material" binding:"required" example:"gid://shopify/Product/42"`
	// Variant is an optional catalog reference of a specific material variant.
	Variant string `form:"variant" example:"gid://shopify/ProductVariant/77"`
	// Infill is the interior fill density percentage.
	Infill int `form:"infill" example:"20" minimum:"0" maximum:"100"`
	// LayerHeight is the print layer height in millimeters.
	LayerHeight float64 `form:"layer_height" binding:"required" example:"0.2"`
	// NozzleDiameter is the nozzle diameter in millimeters.
	NozzleDiameter float64 `form:"nozzle_diameter" example:"0.4"`
} // @name QuoteForm

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrInvalidInfill is returned when infill is outside 0-100.
	ErrInvalidInfill = &ValidationError{
		Field:   "infill",
		Message: "must be between 0 and 100",
	}
	// ErrInvalidLayerHeight is returned when layer_height is not positive.
	ErrInvalidLayerHeight = &ValidationError{
		Field:   "layer_height",
		Message: "must be a positive number of millimeters",
	}
	// ErrInvalidNozzleDiameter is returned when nozzle_diameter is negative.
	ErrInvalidNozzleDiameter = &ValidationError{
		Field:   "nozzle_diameter",
		Message: "must be a positive number of millimeters",
	}
	// ErrMissingMaterial is returned when no material reference is given.
	ErrMissingMaterial = &ValidationError{
		Field:   "material",
		Message: "is required",
	}
	// ErrMissingCustomerEmail is returned when no customer email is given.
	ErrMissingCustomerEmail = &ValidationError{
		Field:   "customer_email",
		Message: "is required",
	}
	// ErrInvalidQuoteFigures is returned when accepted quote figures are negative.
	ErrInvalidQuoteFigures = &ValidationError{
		Field:   "grams",
		Message: "accepted quote figures must be non-negative",
	}
)

// Validate performs custom validation on the form.
// Returns a *ValidationError if validation fails, nil otherwise.
func (f *QuoteForm) Validate() error {
	if f.Material == "" {
		return ErrMissingMaterial
	}
	if f.Infill < 0 || f.Infill > 100 {
		return ErrInvalidInfill
	}
	if f.LayerHeight <= 0 {
		return ErrInvalidLayerHeight
	}
	if f.NozzleDiameter < 0 {
		return ErrInvalidNozzleDiameter
	}
	return nil
}

// Parameters converts the form into domain print parameters,
// applying the 0.4 mm nozzle default.
func (f *QuoteForm) Parameters() model.PrintParameters {
	nozzle := f.NozzleDiameter
	if nozzle == 0 {
		nozzle = 0.4
	}
	return model.PrintParameters{
		Infill:         f.Infill,
		LayerHeight:    f.LayerHeight,
		NozzleDiameter: nozzle,
	}
}

// CreateOrderForm represents the multipart form fields of the order endpoint.
// The model file and optional screenshot are read separately from the
// multipart body. The quote figures are the ones the customer accepted.
//
// @Description Accepted quote plus customer identity for order creation
type CreateOrderForm struct {
	QuoteForm
	// CustomerEmail identifies the ordering customer; the catalog listing
	// is tagged with it.
	CustomerEmail string `form:"customer_email" binding:"required" example:"jane@example.com"`
	// Grams is the estimated mass of the accepted quote.
	Grams float64 `form:"grams" example:"42.17"`
	// Price is the quoted price the customer accepted. Zero is legitimate
	// for materials priced at 0.0 per gram.
	Price float64 `form:"price" example:"42.84"`
	// Complex marks geometry that needs manual review before printing.
	Complex bool `form:"complex" example:"false"`
} // @name CreateOrderForm

// Validate performs custom validation on the form.
func (f *CreateOrderForm) Validate() error {
	if f.CustomerEmail == "" {
		return ErrMissingCustomerEmail
	}
	if f.Grams < 0 || f.Price < 0 {
		return ErrInvalidQuoteFigures
	}
	return f.QuoteForm.Validate()
}
