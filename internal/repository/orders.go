// Package repository provides data access for order records.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/print-quote-service/internal/domain/model"
)

// OrdersRepository provides methods for order record operations.
type OrdersRepository struct {
	collection *mongo.Collection
}

// NewOrdersRepository creates a new orders repository.
func NewOrdersRepository(db *MongoDB) *OrdersRepository {
	return &OrdersRepository{
		collection: db.Orders,
	}
}

// Create inserts a new order record and fills in its generated ID.
func (r *OrdersRepository) Create(ctx context.Context, record *model.OrderRecord) error {
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, record)
	return err
}

// SetListing records the catalog listing created for an order and moves the
// record to the listed status. This is the only mutation an order record
// ever sees in this service.
func (r *OrdersRepository) SetListing(ctx context.Context, id primitive.ObjectID, productID, variantID string, listingPrice float64) error {
	update := bson.M{
		"$set": bson.M{
			"listing_product_id": productID,
			"listing_variant_id": variantID,
			"listing_price":      listingPrice,
			"status":             model.OrderStatusListed,
		},
	}
	_, err := r.collection.UpdateByID(ctx, id, update)
	return err
}

// GetByID returns a single order record, or nil when not found.
func (r *OrdersRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*model.OrderRecord, error) {
	var record model.OrderRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByCustomer returns a customer's order records, newest first.
func (r *OrdersRepository) ListByCustomer(ctx context.Context, customerEmail string, limit int) ([]model.OrderRecord, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{"customer_email": customerEmail}, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []model.OrderRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
