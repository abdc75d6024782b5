package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/catalog"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/metrics"
	"github.com/guttosm/print-quote-service/internal/repository"
)

// OrderService turns an accepted quote into a stored order record and an
// external catalog listing.
// This interface can be mocked for testing.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*model.OrderRecord, error)
}

// CreateOrderInput holds everything needed to create an order.
type CreateOrderInput struct {
	CustomerEmail string
	FileName      string
	Quote         model.Quote
	// Complex marks geometry that needs manual review; the listing gets
	// the review tag.
	Complex bool
	// Screenshot is an optional model render attached to the listing.
	Screenshot []byte
}

type orderService struct {
	repo    repository.OrdersRepositoryInterface
	catalog catalog.Client
	cfg     config.OrdersConfig
}

// NewOrderService creates the order creation service.
func NewOrderService(repo repository.OrdersRepositoryInterface, catalogClient catalog.Client, cfg config.OrdersConfig) OrderService {
	return &orderService{
		repo:    repo,
		catalog: catalogClient,
		cfg:     cfg,
	}
}

// CreateOrder implements OrderService. The order record is persisted first,
// then the catalog listing is created with the marked-up price. Listing
// creation failure leaves the record in pending_listing with no rollback;
// this partial-failure exposure is accepted, the external calls are not
// atomic.
func (s *orderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*model.OrderRecord, error) {
	record := &model.OrderRecord{
		CustomerEmail:   input.CustomerEmail,
		FileName:        input.FileName,
		Quote:           input.Quote,
		ComplexGeometry: input.Complex,
		Status:          model.OrderStatusPendingListing,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, record); err != nil {
		metrics.RecordOrder("store_failed")
		return nil, fmt.Errorf("store order: %w", err)
	}

	// Markup is applied before listing creation; the catalog only ever
	// sees the final listing price.
	listingPrice := model.Round2(input.Quote.Price * s.cfg.ListingMarkup)

	tags := []string{"custom-order", input.CustomerEmail}
	if input.Complex {
		tags = append(tags, s.cfg.ReviewTag)
	}

	listing, err := s.catalog.CreateListing(ctx, catalog.ListingInput{
		Title:         fmt.Sprintf("Custom print: %s", input.FileName),
		Description:   listingDescription(input),
		CustomerEmail: input.CustomerEmail,
		Tags:          tags,
		Price:         listingPrice,
		Grams:         input.Quote.Grams,
		Image:         input.Screenshot,
	})
	if err != nil {
		metrics.RecordOrder("listing_failed")
		logger.Logger().Error().
			Err(err).
			Str("order_id", record.ID.Hex()).
			Msg("Listing creation failed, order left pending")
		return nil, fmt.Errorf("create listing for order %s: %w", record.ID.Hex(), err)
	}

	record.ListingProductID = listing.ProductID
	record.ListingVariantID = listing.VariantID
	record.ListingPrice = listingPrice
	record.Status = model.OrderStatusListed

	if err := s.repo.SetListing(ctx, record.ID, listing.ProductID, listing.VariantID, listingPrice); err != nil {
		// The listing exists; losing the back-reference is logged, not fatal.
		logger.Logger().Warn().
			Err(err).
			Str("order_id", record.ID.Hex()).
			Str("product_id", listing.ProductID).
			Msg("Failed to record listing ids on order")
	}

	metrics.RecordOrder("success")
	return record, nil
}

func listingDescription(input CreateOrderInput) string {
	return fmt.Sprintf(
		"Custom 3D print of %s for %s. Estimated %.2f g, %d%% infill, %.2f mm layers.",
		input.FileName,
		input.CustomerEmail,
		input.Quote.Grams,
		input.Quote.Parameters.Infill,
		input.Quote.Parameters.LayerHeight,
	)
}
