// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/print-quote-service/internal/domain/model"
)

type MockQuoteService struct {
	mock.Mock
}

// NewMockQuoteService creates a mock wired to the test's lifecycle.
func NewMockQuoteService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQuoteService {
	m := &MockQuoteService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockQuoteService) Quote(ctx context.Context, geometryPath string, req model.QuoteRequest) (*model.Quote, error) {
	args := m.Called(ctx, geometryPath, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Quote), args.Error(1)
}
