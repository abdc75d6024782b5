package catalog

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/circuitbreaker"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/metrics"
)

const (
	accessTokenHeader = "X-Shopify-Access-Token"

	// densityNamespace/densityKey locate the filament density metafield on
	// a product or variant.
	densityNamespace = "custom"
	densityKey       = "density"
)

// ShopifyClient implements Client against the Shopify admin REST API.
type ShopifyClient struct {
	cfg     config.CatalogConfig
	baseURL string
	http    *http.Client
	breaker *circuitbreaker.CircuitBreaker
}

// ShopifyOption configures a ShopifyClient.
type ShopifyOption func(*ShopifyClient)

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(c *http.Client) ShopifyOption {
	return func(s *ShopifyClient) {
		s.http = c
	}
}

// WithBaseURL overrides the API base URL derived from the shop domain.
// Used by tests to point the client at a local server.
func WithBaseURL(u string) ShopifyOption {
	return func(s *ShopifyClient) {
		s.baseURL = strings.TrimSuffix(u, "/")
	}
}

// WithCircuitBreaker wraps price lookups with the given circuit breaker.
func WithCircuitBreaker(cb *circuitbreaker.CircuitBreaker) ShopifyOption {
	return func(s *ShopifyClient) {
		s.breaker = cb
	}
}

// NewShopifyClient creates a catalog client for the configured shop domain.
func NewShopifyClient(cfg config.CatalogConfig, opts ...ShopifyOption) *ShopifyClient {
	s := &ShopifyClient{
		cfg:     cfg,
		baseURL: fmt.Sprintf("https://%s/admin/api/%s", cfg.Domain, cfg.APIVersion),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// variantPayload mirrors the admin API variant envelope.
type variantPayload struct {
	Variant struct {
		ID    int64  `json:"id"`
		Price string `json:"price"`
	} `json:"variant"`
}

// productPayload mirrors the admin API product envelope.
type productPayload struct {
	Product struct {
		ID       int64 `json:"id"`
		Variants []struct {
			ID    int64  `json:"id"`
			Price string `json:"price"`
		} `json:"variants"`
	} `json:"product"`
}

// metafieldsPayload mirrors the admin API metafields envelope. Values arrive
// as strings or numbers depending on the metafield definition, so the value
// is kept raw and parsed leniently.
type metafieldsPayload struct {
	Metafields []struct {
		Namespace string          `json:"namespace"`
		Key       string          `json:"key"`
		Value     json.RawMessage `json:"value"`
	} `json:"metafields"`
}

// ResolveMaterialPricing implements Client.
func (s *ShopifyClient) ResolveMaterialPricing(ctx context.Context, materialRef, variantRef string) (model.MaterialPricing, error) {
	pricing := model.MaterialPricing{Density: s.cfg.DefaultDensity}

	// A variant reference overrides the material reference for both the
	// price and the density metafield.
	if variantRef != "" && IsVariantRef(variantRef) {
		_, variantID, _ := ParseRef(variantRef)
		price, err := s.lookupVariantPrice(ctx, variantID)
		if err != nil {
			return model.MaterialPricing{}, err
		}
		pricing.UnitPrice = price
		pricing.Density = s.lookupDensity(ctx, "variants", variantID)
		return pricing, nil
	}

	kind, productID, ok := ParseRef(materialRef)
	if !ok || kind != KindProduct {
		return model.MaterialPricing{}, fmt.Errorf("%w: material %q", ErrInvalidReference, materialRef)
	}

	price, err := s.lookupProductPrice(ctx, productID)
	if err != nil {
		return model.MaterialPricing{}, err
	}
	pricing.UnitPrice = price
	pricing.Density = s.lookupDensity(ctx, "products", productID)
	return pricing, nil
}

// lookupVariantPrice fetches the price of a single variant.
func (s *ShopifyClient) lookupVariantPrice(ctx context.Context, variantID string) (float64, error) {
	var payload variantPayload
	err := s.priceRequest(ctx, fmt.Sprintf("/variants/%s.json?fields=id,price", variantID), &payload)
	if err != nil {
		return 0, err
	}
	return parsePrice(payload.Variant.Price)
}

// lookupProductPrice fetches the product and prices it from its first
// variant. A product without variants prices at 0.0.
func (s *ShopifyClient) lookupProductPrice(ctx context.Context, productID string) (float64, error) {
	var payload productPayload
	err := s.priceRequest(ctx, fmt.Sprintf("/products/%s.json?fields=id,variants", productID), &payload)
	if err != nil {
		return 0, err
	}
	if len(payload.Product.Variants) == 0 {
		return 0.0, nil
	}
	return parsePrice(payload.Product.Variants[0].Price)
}

// priceRequest performs a price lookup GET with circuit breaker protection.
// Any failure maps to ErrUnavailable; price lookups are fatal to a quote.
func (s *ShopifyClient) priceRequest(ctx context.Context, path string, out interface{}) error {
	call := func() error {
		return s.getJSON(ctx, path, out)
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(ctx, call)
	} else {
		err = call()
	}
	if err != nil {
		metrics.RecordCatalogRequest("price", "error")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	metrics.RecordCatalogRequest("price", "success")
	return nil
}

// lookupDensity fetches the density metafield of the given entity. Lookup
// failures and malformed values downgrade to the default density; density
// resolution is never fatal.
func (s *ShopifyClient) lookupDensity(ctx context.Context, resource, id string) float64 {
	var payload metafieldsPayload
	if err := s.getJSON(ctx, fmt.Sprintf("/%s/%s/metafields.json", resource, id), &payload); err != nil {
		metrics.RecordCatalogRequest("metafields", "error")
		logger.Logger().Warn().
			Err(err).
			Str("resource", resource).
			Str("id", id).
			Float64("default_density", s.cfg.DefaultDensity).
			Msg("Density lookup failed, using default density")
		return s.cfg.DefaultDensity
	}
	metrics.RecordCatalogRequest("metafields", "success")

	for _, mf := range payload.Metafields {
		if mf.Namespace != densityNamespace || mf.Key != densityKey {
			continue
		}
		if d, ok := parseDensity(mf.Value); ok && d > 0 {
			return d
		}
		logger.Logger().Warn().
			Str("resource", resource).
			Str("id", id).
			Str("value", string(mf.Value)).
			Msg("Malformed density metafield, using default density")
		return s.cfg.DefaultDensity
	}
	return s.cfg.DefaultDensity
}

// parseDensity accepts both `"1.04"` and `1.04` metafield encodings.
func parseDensity(raw json.RawMessage) (float64, bool) {
	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, true
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(asString), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func parsePrice(price string) (float64, error) {
	if price == "" {
		return 0.0, nil
	}
	f, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable price %q", ErrUnavailable, price)
	}
	return f, nil
}

// getJSON performs an authenticated GET and decodes the JSON response.
func (s *ShopifyClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// postJSON performs an authenticated POST/PUT and decodes the JSON response
// when out is non-nil.
func (s *ShopifyClient) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	s.setHeaders(req)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("catalog returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *ShopifyClient) setHeaders(req *http.Request) {
	req.Header.Set(accessTokenHeader, s.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

// encodeImage base64-encodes image bytes for the image attachment call.
func encodeImage(image []byte) string {
	return base64.StdEncoding.EncodeToString(image)
}
