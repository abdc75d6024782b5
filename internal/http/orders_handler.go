package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/service"
)

// CreateOrder handles POST /api/orders requests.
//
// The quote figures are taken from the form as the customer accepted them;
// the model is not re-sliced. An order record is persisted first, then a
// catalog listing is created with the marked-up price. When listing creation
// fails the record stays in pending_listing and the request still fails, so
// the caller can retry.
//
// @Summary      Create an order from an accepted quote
// @Description  Persists an order record for an accepted quote and creates a draft listing in the product catalog so the customer can check out. An optional screenshot of the model is attached to the listing. Supports idempotency via Idempotency-Key header.
// @Tags         Orders
// @Accept       multipart/form-data
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        file formData file true "3D model file the quote was computed for"
// @Param        screenshot formData file false "Optional render of the model, attached to the listing"
// @Param        customer_email formData string true "Customer email address"
// @Param        material formData string true "Catalog reference of the material"
// @Param        variant formData string false "Catalog reference of a specific material variant"
// @Param        infill formData int false "Infill percentage (0-100)"
// @Param        layer_height formData number true "Layer height in millimeters"
// @Param        nozzle_diameter formData number false "Nozzle diameter in millimeters (default 0.4)"
// @Param        grams formData number true "Estimated mass of the accepted quote"
// @Param        price formData number true "Quoted price the customer accepted"
// @Param        complex formData boolean false "Mark the geometry for manual review"
// @Success      201 {object} dto.SuccessResponse "Created order record"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid parameters"
// @Failure      413 {object} dto.ErrorResponse "Payload too large - model file exceeds the size limit"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - catalog listing could not be created"
// @Router       /api/orders [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	// Order creation requires persistence; without it the endpoint is served
	// but degraded.
	if h.orders == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, nil)
		return
	}

	var form dto.CreateOrderForm
	if err := c.ShouldBind(&form); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if err := form.Validate(); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationParameters, err)
		return
	}

	file, ok := h.modelFile(c, builder)
	if !ok {
		return
	}

	screenshot, err := h.readScreenshot(c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	auditLog(c, "create_order", "Order creation requested", map[string]interface{}{
		"file":           file.Filename,
		"customer_email": form.CustomerEmail,
		"price":          form.Price,
	})

	params := form.Parameters()
	record, err := h.orders.CreateOrder(c.Request.Context(), service.CreateOrderInput{
		CustomerEmail: form.CustomerEmail,
		FileName:      file.Filename,
		Complex:       form.Complex,
		Screenshot:    screenshot,
		Quote: model.Quote{
			File:         file.Filename,
			Grams:        form.Grams,
			Price:        form.Price,
			Material:     form.Material,
			Variant:      form.Variant,
			Parameters:   params,
		},
	})
	if err != nil {
		quoteError(builder, err)
		return
	}

	builder.SuccessCreated(record)
}

// readScreenshot reads the optional screenshot part into memory. Absence is
// not an error; a present but unreadable part is.
func (h *Handler) readScreenshot(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile("screenshot")
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}
