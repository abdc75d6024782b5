package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/catalog"
	"github.com/guttosm/print-quote-service/internal/domain/dto"
	"github.com/guttosm/print-quote-service/internal/domain/model"
	"github.com/guttosm/print-quote-service/internal/i18n"
	"github.com/guttosm/print-quote-service/internal/middleware"
	"github.com/guttosm/print-quote-service/internal/service"
	"github.com/guttosm/print-quote-service/internal/slicer"
)

// Handler provides HTTP handlers for quote and order routes.
type Handler struct {
	quotes    service.QuoteService
	orders    service.OrderService
	uploadCfg config.UploadConfig
}

// NewHandler creates a new Handler instance.
func NewHandler(quotes service.QuoteService, orders service.OrderService, uploadCfg config.UploadConfig) *Handler {
	return &Handler{
		quotes:    quotes,
		orders:    orders,
		uploadCfg: uploadCfg,
	}
}

// stageUpload saves a multipart file into a fresh per-request directory and
// returns the staged path plus a cleanup function. The staged file only
// lives for the duration of the request.
func (h *Handler) stageUpload(c *gin.Context, file *multipart.FileHeader) (string, func(), error) {
	dir, err := os.MkdirTemp(h.uploadCfg.TempDir, "upload-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	path := filepath.Join(dir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, path); err != nil {
		cleanup()
		return "", nil, err
	}
	return path, cleanup, nil
}

// modelFile extracts and validates the uploaded model file. A nil return
// with false means the response has already been written.
func (h *Handler) modelFile(c *gin.Context, builder *ResponseBuilder) (*multipart.FileHeader, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyMissingModelFile, err)
		return nil, false
	}
	if h.uploadCfg.MaxFileSize > 0 && file.Size > h.uploadCfg.MaxFileSize {
		builder.Error(http.StatusRequestEntityTooLarge, i18n.ErrKeyFileTooLarge, nil)
		return nil, false
	}
	return file, true
}

// quoteError writes the response for a failed quote pipeline run, mapping
// domain errors onto HTTP statuses.
func quoteError(builder *ResponseBuilder, err error) {
	var engineErr *slicer.EngineError
	switch {
	case errors.Is(err, catalog.ErrInvalidReference):
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidMaterial, err)
	case errors.Is(err, catalog.ErrUnavailable):
		builder.Error(http.StatusBadGateway, i18n.ErrKeyCatalogUnavailable, err)
	case errors.As(err, &engineErr):
		builder.Error(http.StatusUnprocessableEntity, i18n.ErrKeyUnprocessableGeometry, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// auditLog emits an async audit entry when a logging service is configured.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// Quote handles POST /api/quote requests.
//
// @Summary      Quote a 3D model print
// @Description  Uploads a 3D model file with print parameters and returns a price quote. The material reference is resolved against the product catalog, the model is sliced to estimate material mass, and the price is computed from mass, unit price and quality surcharges. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       multipart/form-data
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        file formData file true "3D model file (STL, 3MF, OBJ)"
// @Param        material formData string true "Catalog reference of the material"
// @Param        variant formData string false "Catalog reference of a specific material variant"
// @Param        infill formData int false "Infill percentage (0-100)"
// @Param        layer_height formData number true "Layer height in millimeters"
// @Param        nozzle_diameter formData number false "Nozzle diameter in millimeters (default 0.4)"
// @Success      200 {object} dto.SuccessResponse "Computed quote"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid parameters or material reference"
// @Failure      413 {object} dto.ErrorResponse "Payload too large - model file exceeds the size limit"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable entity - the slicing engine rejected the model"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      502 {object} dto.ErrorResponse "Bad gateway - material catalog unavailable"
// @Router       /api/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var form dto.QuoteForm
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

	path, cleanup, err := h.stageUpload(c, file)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	defer cleanup()

	auditLog(c, "quote", "Quote requested", map[string]interface{}{
		"file":     file.Filename,
		"material": form.Material,
		"infill":   form.Infill,
	})

	quote, err := h.quotes.Quote(c.Request.Context(), path, model.QuoteRequest{
		FileName:    file.Filename,
		MaterialRef: form.Material,
		VariantRef:  form.Variant,
		Parameters:  form.Parameters(),
	})
	if err != nil {
		quoteError(builder, err)
		return
	}

	builder.SuccessOK(quote)
}

// Ping handles GET /api/ping requests.
//
// @Summary     Liveness echo
// @Description Returns a timestamped pong. Kept for clients that poll the API surface rather than the orchestration probes.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "pong"
// @Router      /api/ping [get]
func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
