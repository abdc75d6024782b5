//go:build !integration

package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/print-quote-service/config"
)

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Domain:         "example.myshopify.com",
		APIToken:       "shpat_test",
		APIVersion:     "2023-10",
		DefaultDensity: 1.24,
		Timeout:        2 * time.Second,
	}
}

// catalogStub is a minimal admin API double driven by per-path handlers.
type catalogStub struct {
	mux    *http.ServeMux
	server *httptest.Server
}

func newCatalogStub(t *testing.T) *catalogStub {
	t.Helper()
	stub := &catalogStub{mux: http.NewServeMux()}
	stub.server = httptest.NewServer(stub.mux)
	t.Cleanup(stub.server.Close)
	return stub
}

func (c *catalogStub) handleJSON(pattern string, status int, body string) {
	c.mux.HandleFunc(pattern, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func (c *catalogStub) client(t *testing.T) *ShopifyClient {
	t.Helper()
	return NewShopifyClient(testCatalogConfig(), WithBaseURL(c.server.URL))
}

func TestShopifyClient_ResolveMaterialPricing(t *testing.T) {
	ctx := context.Background()

	t.Run("prices a product from its first variant", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusOK,
			`{"product":{"id":123,"variants":[{"id":1,"price":"0.10"},{"id":2,"price":"9.99"}]}}`)
		stub.handleJSON("/products/123/metafields.json", http.StatusOK,
			`{"metafields":[{"namespace":"custom","key":"density","value":"1.04"}]}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		require.NoError(t, err)
		assert.InDelta(t, 0.10, pricing.UnitPrice, 1e-9)
		assert.InDelta(t, 1.04, pricing.Density, 1e-9)
	})

	t.Run("variant reference takes precedence", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/variants/456.json", http.StatusOK,
			`{"variant":{"id":456,"price":"0.25"}}`)
		stub.handleJSON("/variants/456/metafields.json", http.StatusOK,
			`{"metafields":[{"namespace":"custom","key":"density","value":1.27}]}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx,
			"gid://shopify/Product/123", "gid://shopify/ProductVariant/456")
		require.NoError(t, err)
		assert.InDelta(t, 0.25, pricing.UnitPrice, 1e-9)
		assert.InDelta(t, 1.27, pricing.Density, 1e-9)
	})

	t.Run("product without variants prices at zero", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusOK,
			`{"product":{"id":123,"variants":[]}}`)
		stub.handleJSON("/products/123/metafields.json", http.StatusOK,
			`{"metafields":[]}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		require.NoError(t, err)
		assert.Zero(t, pricing.UnitPrice)
	})

	t.Run("missing density metafield falls back to default", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusOK,
			`{"product":{"id":123,"variants":[{"id":1,"price":"0.10"}]}}`)
		stub.handleJSON("/products/123/metafields.json", http.StatusOK,
			`{"metafields":[{"namespace":"other","key":"color","value":"red"}]}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		require.NoError(t, err)
		assert.InDelta(t, 1.24, pricing.Density, 1e-9)
	})

	t.Run("malformed density falls back to default", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusOK,
			`{"product":{"id":123,"variants":[{"id":1,"price":"0.10"}]}}`)
		stub.handleJSON("/products/123/metafields.json", http.StatusOK,
			`{"metafields":[{"namespace":"custom","key":"density","value":"not-a-number"}]}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		require.NoError(t, err)
		assert.InDelta(t, 1.24, pricing.Density, 1e-9)
	})

	t.Run("density lookup failure is not fatal", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusOK,
			`{"product":{"id":123,"variants":[{"id":1,"price":"0.10"}]}}`)
		stub.handleJSON("/products/123/metafields.json", http.StatusInternalServerError, `{}`)

		pricing, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		require.NoError(t, err)
		assert.InDelta(t, 0.10, pricing.UnitPrice, 1e-9)
		assert.InDelta(t, 1.24, pricing.Density, 1e-9)
	})

	t.Run("price lookup failure is fatal", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products/123.json", http.StatusBadGateway, `{}`)

		_, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/Product/123", "")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("malformed material reference", func(t *testing.T) {
		stub := newCatalogStub(t)

		_, err := stub.client(t).ResolveMaterialPricing(ctx, "not-a-ref", "")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("variant kind in the material slot is rejected", func(t *testing.T) {
		stub := newCatalogStub(t)

		_, err := stub.client(t).ResolveMaterialPricing(ctx, "gid://shopify/ProductVariant/456", "")
		assert.ErrorIs(t, err, ErrInvalidReference)
	})

	t.Run("sends the access token", func(t *testing.T) {
		stub := newCatalogStub(t)
		var gotToken string
		stub.mux.HandleFunc("/variants/456.json", func(w http.ResponseWriter, r *http.Request) {
			gotToken = r.Header.Get("X-Shopify-Access-Token")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"variant":{"id":456,"price":"0.25"}}`))
		})
		stub.handleJSON("/variants/456/metafields.json", http.StatusOK, `{"metafields":[]}`)

		_, err := stub.client(t).ResolveMaterialPricing(ctx, "", "gid://shopify/ProductVariant/456")
		require.NoError(t, err)
		assert.Equal(t, "shpat_test", gotToken)
	})
}

func TestShopifyClient_CreateListing(t *testing.T) {
	ctx := context.Background()

	listingInput := ListingInput{
		Title:         "Custom print: bracket.stl",
		Description:   "Custom 3D print",
		CustomerEmail: "buyer@example.com",
		Tags:          []string{"custom-order", "buyer@example.com"},
		Price:         3.0,
		Grams:         25.3,
	}

	t.Run("creates and publishes the listing", func(t *testing.T) {
		stub := newCatalogStub(t)

		var created createProductPayload
		var published bool
		stub.mux.HandleFunc("/products.json", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&created))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"product":{"id":9001,"variants":[{"id":9002,"price":"3.00"}]}}`))
		})
		stub.mux.HandleFunc("/products/9001.json", func(w http.ResponseWriter, r *http.Request) {
			published = r.Method == http.MethodPut
			_, _ = w.Write([]byte(`{}`))
		})

		listing, err := stub.client(t).CreateListing(ctx, listingInput)
		require.NoError(t, err)

		assert.Equal(t, "9001", listing.ProductID)
		assert.Equal(t, "9002", listing.VariantID)
		assert.True(t, published)
		assert.Equal(t, "Custom print: bracket.stl", created.Product.Title)
		assert.Equal(t, "custom-order, buyer@example.com", created.Product.Tags)
		require.Len(t, created.Product.Variants, 1)
		assert.Equal(t, "3.00", created.Product.Variants[0].Price)
		assert.Equal(t, 25, created.Product.Variants[0].Grams)
	})

	t.Run("publish failure does not fail the listing", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products.json", http.StatusOK,
			`{"product":{"id":9001,"variants":[{"id":9002,"price":"3.00"}]}}`)
		stub.handleJSON("/products/9001.json", http.StatusInternalServerError, `{}`)

		listing, err := stub.client(t).CreateListing(ctx, listingInput)
		require.NoError(t, err)
		assert.Equal(t, "9001", listing.ProductID)
	})

	t.Run("image attachment failure does not fail the listing", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products.json", http.StatusOK,
			`{"product":{"id":9001,"variants":[{"id":9002,"price":"3.00"}]}}`)
		stub.handleJSON("/products/9001.json", http.StatusOK, `{}`)
		stub.handleJSON("/products/9001/images.json", http.StatusInternalServerError, `{}`)

		input := listingInput
		input.Image = []byte{0x89, 0x50, 0x4e, 0x47}

		listing, err := stub.client(t).CreateListing(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "9001", listing.ProductID)
	})

	t.Run("creation failure is fatal", func(t *testing.T) {
		stub := newCatalogStub(t)
		stub.handleJSON("/products.json", http.StatusUnprocessableEntity, `{"errors":"invalid"}`)

		listing, err := stub.client(t).CreateListing(ctx, listingInput)
		assert.Nil(t, listing)
		assert.Error(t, err)
	})
}

func TestParsePrice(t *testing.T) {
	t.Run("empty price means free", func(t *testing.T) {
		price, err := parsePrice("")
		require.NoError(t, err)
		assert.Zero(t, price)
	})

	t.Run("decimal string", func(t *testing.T) {
		price, err := parsePrice("12.50")
		require.NoError(t, err)
		assert.InDelta(t, 12.5, price, 1e-9)
	})

	t.Run("garbage is unavailable", func(t *testing.T) {
		_, err := parsePrice("free")
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
