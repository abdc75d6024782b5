// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/print-quote-service/internal/domain/model"
)

// OrdersRepositoryInterface defines the interface for order repository operations.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, record *model.OrderRecord) error
	SetListing(ctx context.Context, id primitive.ObjectID, productID, variantID string, listingPrice float64) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*model.OrderRecord, error)
	ListByCustomer(ctx context.Context, customerEmail string, limit int) ([]model.OrderRecord, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
