package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuoteForm() QuoteForm {
	return QuoteForm{
		Material:    "gid://shopify/Product/42",
		Infill:      20,
		LayerHeight: 0.2,
	}
}

func TestQuoteForm_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*QuoteForm)
		expectedError error
	}{
		{
			name:   "valid form",
			mutate: func(f *QuoteForm) {},
		},
		{
			name:   "valid form with variant and nozzle",
			mutate: func(f *QuoteForm) { f.Variant = "gid://shopify/ProductVariant/77"; f.NozzleDiameter = 0.6 },
		},
		{
			name:          "missing material",
			mutate:        func(f *QuoteForm) { f.Material = "" },
			expectedError: ErrMissingMaterial,
		},
		{
			name:          "infill over 100",
			mutate:        func(f *QuoteForm) { f.Infill = 101 },
			expectedError: ErrInvalidInfill,
		},
		{
			name:          "negative infill",
			mutate:        func(f *QuoteForm) { f.Infill = -1 },
			expectedError: ErrInvalidInfill,
		},
		{
			name:          "zero layer height",
			mutate:        func(f *QuoteForm) { f.LayerHeight = 0 },
			expectedError: ErrInvalidLayerHeight,
		},
		{
			name:          "negative nozzle diameter",
			mutate:        func(f *QuoteForm) { f.NozzleDiameter = -0.4 },
			expectedError: ErrInvalidNozzleDiameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validQuoteForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteForm_Parameters(t *testing.T) {
	t.Run("applies nozzle default", func(t *testing.T) {
		form := validQuoteForm()
		params := form.Parameters()

		assert.Equal(t, 20, params.Infill)
		assert.Equal(t, 0.2, params.LayerHeight)
		assert.Equal(t, 0.4, params.NozzleDiameter)
	})

	t.Run("keeps explicit nozzle", func(t *testing.T) {
		form := validQuoteForm()
		form.NozzleDiameter = 0.6
		params := form.Parameters()

		assert.Equal(t, 0.6, params.NozzleDiameter)
	})
}

func TestCreateOrderForm_Validate(t *testing.T) {
	validForm := func() CreateOrderForm {
		return CreateOrderForm{
			QuoteForm:     validQuoteForm(),
			CustomerEmail: "jane@example.com",
			Grams:         42.17,
			Price:         42.84,
		}
	}

	tests := []struct {
		name          string
		mutate        func(*CreateOrderForm)
		expectedError error
	}{
		{
			name:   "valid form",
			mutate: func(f *CreateOrderForm) {},
		},
		{
			name:          "missing customer email",
			mutate:        func(f *CreateOrderForm) { f.CustomerEmail = "" },
			expectedError: ErrMissingCustomerEmail,
		},
		{
			name:   "zero price for a free quote",
			mutate: func(f *CreateOrderForm) { f.Price = 0 },
		},
		{
			name:          "negative grams",
			mutate:        func(f *CreateOrderForm) { f.Grams = -1 },
			expectedError: ErrInvalidQuoteFigures,
		},
		{
			name:          "negative price",
			mutate:        func(f *CreateOrderForm) { f.Price = -0.01 },
			expectedError: ErrInvalidQuoteFigures,
		},
		{
			name:          "embedded quote form validated",
			mutate:        func(f *CreateOrderForm) { f.Material = "" },
			expectedError: ErrMissingMaterial,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := form.Validate()
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "layer_height", Message: "must be a positive number of millimeters"}
	assert.Equal(t, "layer_height: must be a positive number of millimeters", err.Error())
}
