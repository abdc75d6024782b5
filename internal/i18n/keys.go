// Package i18n provides internationalization support for the print quote service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationParameters indicates invalid print parameters.
	ErrKeyValidationParameters = "error.validation.parameters"
	// ErrKeyMissingModelFile indicates the multipart body carried no model file.
	ErrKeyMissingModelFile = "error.missing_model_file"
	// ErrKeyFileTooLarge indicates the uploaded model exceeds the size limit.
	ErrKeyFileTooLarge = "error.file_too_large"
	// ErrKeyUnprocessableGeometry indicates the slicing engine rejected the model.
	ErrKeyUnprocessableGeometry = "error.unprocessable_geometry"
	// ErrKeyCatalogUnavailable indicates the material catalog could not be reached.
	ErrKeyCatalogUnavailable = "error.catalog_unavailable"
	// ErrKeyInvalidMaterial indicates a malformed material reference.
	ErrKeyInvalidMaterial = "error.invalid_material"
)

// Success message translation keys.
const (
	// SuccessKeyQuoteComputed indicates a successfully computed quote.
	SuccessKeyQuoteComputed = "success.quote_computed"
	// SuccessKeyOrderCreated indicates a successfully created order.
	SuccessKeyOrderCreated = "success.order_created"
)
