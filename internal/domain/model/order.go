package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of an order record within this service.
// The external catalog owns the listing's lifecycle after creation, so the
// only transitions here are pending_listing -> listed (or pending_listing
// forever when listing creation failed partway).
const (
	// OrderStatusPendingListing means the record is stored but no catalog
	// listing exists for it yet.
	OrderStatusPendingListing = "pending_listing"
	// OrderStatusListed means a catalog listing was created for the order.
	OrderStatusListed = "listed"
)

// OrderRecord binds an accepted quote, the uploaded model file, and the
// customer identity into a persisted order. Created once, never mutated by
// this service afterward.
//
// @Description Persisted order for an accepted quote
type OrderRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerEmail string             `bson:"customer_email" json:"customer_email" example:"jane@example.com"`
	FileName      string             `bson:"file_name" json:"file_name" example:"bracket.stl"`
	Quote         Quote              `bson:"quote" json:"quote"`
	// ComplexGeometry marks orders whose geometry needs manual review
	// before printing.
	ComplexGeometry bool `bson:"complex_geometry" json:"complex_geometry"`
	// ListingProductID and ListingVariantID identify the catalog listing
	// created for this order. Empty when listing creation failed.
	ListingProductID string `bson:"listing_product_id,omitempty" json:"listing_product_id,omitempty"`
	ListingVariantID string `bson:"listing_variant_id,omitempty" json:"listing_variant_id,omitempty"`
	// ListingPrice is the marked-up price set on the catalog listing.
	ListingPrice float64   `bson:"listing_price,omitempty" json:"listing_price,omitempty"`
	Status       string    `bson:"status" json:"status" example:"listed"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
} // @name OrderRecord
