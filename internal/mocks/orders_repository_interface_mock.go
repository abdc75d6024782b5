// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/print-quote-service/internal/domain/model"
)

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) Create(ctx context.Context, record *model.OrderRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) SetListing(ctx context.Context, id primitive.ObjectID, productID, variantID string, listingPrice float64) error {
	args := m.Called(ctx, id, productID, variantID, listingPrice)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) GetByID(ctx context.Context, id primitive.ObjectID) (*model.OrderRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OrderRecord), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) ListByCustomer(ctx context.Context, customerEmail string, limit int) ([]model.OrderRecord, error) {
	args := m.Called(ctx, customerEmail, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.OrderRecord), args.Error(1)
}
