package catalog

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/metrics"
)

// createProductPayload is the listing creation request envelope.
type createProductPayload struct {
	Product struct {
		Title    string `json:"title"`
		BodyHTML string `json:"body_html,omitempty"`
		Tags     string `json:"tags,omitempty"`
		Variants []struct {
			Price string `json:"price"`
			Grams int    `json:"grams"`
		} `json:"variants"`
	} `json:"product"`
}

// CreateListing implements Client. The product creation call is the primary
// operation; publishing and image attachment are independent sub-steps whose
// failures are logged and swallowed. A failure partway leaves a listing
// created but incompletely configured; there is no compensating rollback.
func (s *ShopifyClient) CreateListing(ctx context.Context, input ListingInput) (*Listing, error) {
	var payload createProductPayload
	payload.Product.Title = input.Title
	payload.Product.BodyHTML = input.Description
	payload.Product.Tags = strings.Join(input.Tags, ", ")
	payload.Product.Variants = make([]struct {
		Price string `json:"price"`
		Grams int    `json:"grams"`
	}, 1)
	payload.Product.Variants[0].Price = strconv.FormatFloat(input.Price, 'f', 2, 64)
	payload.Product.Variants[0].Grams = int(math.Round(input.Grams))

	var created productPayload
	if err := s.sendJSON(ctx, http.MethodPost, "/products.json", payload, &created); err != nil {
		metrics.RecordCatalogRequest("create_listing", "error")
		return nil, fmt.Errorf("create listing: %w", err)
	}
	metrics.RecordCatalogRequest("create_listing", "success")

	listing := &Listing{
		ProductID: strconv.FormatInt(created.Product.ID, 10),
	}
	if len(created.Product.Variants) > 0 {
		listing.VariantID = strconv.FormatInt(created.Product.Variants[0].ID, 10)
	}

	s.publishListing(ctx, listing.ProductID)
	if len(input.Image) > 0 {
		s.attachImage(ctx, listing.ProductID, input.Image)
	}

	return listing, nil
}

// publishListing marks the created product as published. Fire and forget.
func (s *ShopifyClient) publishListing(ctx context.Context, productID string) {
	payload := map[string]interface{}{
		"product": map[string]interface{}{
			"id":        productID,
			"published": true,
		},
	}
	if err := s.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%s.json", productID), payload, nil); err != nil {
		metrics.RecordCatalogRequest("publish_listing", "error")
		logger.Logger().Warn().
			Err(err).
			Str("product_id", productID).
			Msg("Listing publish failed, listing stays unpublished")
		return
	}
	metrics.RecordCatalogRequest("publish_listing", "success")
}

// attachImage uploads the screenshot to the created product. Fire and forget.
func (s *ShopifyClient) attachImage(ctx context.Context, productID string, image []byte) {
	payload := map[string]interface{}{
		"image": map[string]interface{}{
			"attachment": encodeImage(image),
		},
	}
	if err := s.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/products/%s/images.json", productID), payload, nil); err != nil {
		metrics.RecordCatalogRequest("attach_image", "error")
		logger.Logger().Warn().
			Err(err).
			Str("product_id", productID).
			Msg("Listing image attach failed, listing stays without image")
		return
	}
	metrics.RecordCatalogRequest("attach_image", "success")
}
