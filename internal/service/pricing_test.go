//go:build !integration

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPricingEngine_BasePrice(t *testing.T) {
	engine := NewPricingEngine(DefaultPricingConfig())

	tests := []struct {
		name      string
		mass      float64
		unitPrice float64
		want      float64
	}{
		{
			name:      "whole gram mass",
			mass:      12.0,
			unitPrice: 0.5,
			want:      6.0,
		},
		{
			name:      "mass rounds up before multiplication",
			mass:      12.6,
			unitPrice: 0.07,
			want:      0.91, // 13 * 0.07, not round2(12.6 * 0.07) = 0.88
		},
		{
			name:      "mass rounds down before multiplication",
			mass:      12.4,
			unitPrice: 0.07,
			want:      0.84, // 12 * 0.07
		},
		{
			name:      "half gram rounds up",
			mass:      1.5,
			unitPrice: 1.0,
			want:      2.0,
		},
		{
			name:      "zero unit price yields zero",
			mass:      500.0,
			unitPrice: 0.0,
			want:      0.0,
		},
		{
			name:      "result rounded to cents",
			mass:      3.0,
			unitPrice: 0.333,
			want:      1.0, // 3 * 0.333 = 0.999 -> 1.00
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.BasePrice(tt.mass, tt.unitPrice)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPricingEngine_SurchargeMultiplier(t *testing.T) {
	engine := NewPricingEngine(DefaultPricingConfig())

	tests := []struct {
		name        string
		layerHeight float64
		nozzle      float64
		want        float64
	}{
		{
			name:        "no surcharges",
			layerHeight: 0.2,
			nozzle:      0.4,
			want:        1.0,
		},
		{
			name:        "fine layer at threshold",
			layerHeight: 0.08,
			nozzle:      0.4,
			want:        1.2,
		},
		{
			name:        "fine layer below threshold",
			layerHeight: 0.05,
			nozzle:      0.4,
			want:        1.2,
		},
		{
			name:        "layer just above threshold is standard",
			layerHeight: 0.081,
			nozzle:      0.4,
			want:        1.0,
		},
		{
			name:        "fine nozzle below threshold",
			layerHeight: 0.2,
			nozzle:      0.25,
			want:        1.2,
		},
		{
			name:        "nozzle at threshold is standard",
			layerHeight: 0.2,
			nozzle:      0.4,
			want:        1.0,
		},
		{
			name:        "both surcharges compose multiplicatively",
			layerHeight: 0.08,
			nozzle:      0.25,
			want:        1.44,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.SurchargeMultiplier(tt.layerHeight, tt.nozzle)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPricingEngine_ComputeQuote(t *testing.T) {
	engine := NewPricingEngine(DefaultPricingConfig())

	t.Run("standard quality quote", func(t *testing.T) {
		quote := engine.ComputeQuote(25.3, 0.1, 0.2, 0.4)

		assert.InDelta(t, 25.3, quote.Grams, 1e-9)
		assert.InDelta(t, 25.0, quote.BaseMass, 1e-9)
		assert.InDelta(t, 2.5, quote.BasePrice, 1e-9)
		assert.InDelta(t, 2.5, quote.Price, 1e-9)
		assert.InDelta(t, 0.1, quote.PricePerGram, 1e-9)
	})

	t.Run("surcharged quote keeps base price", func(t *testing.T) {
		quote := engine.ComputeQuote(25.3, 0.1, 0.08, 0.25)

		assert.InDelta(t, 2.5, quote.BasePrice, 1e-9)
		assert.InDelta(t, 3.6, quote.Price, 1e-9) // 2.5 * 1.44
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		a := engine.ComputeQuote(17.77, 0.055, 0.12, 0.4)
		b := engine.ComputeQuote(17.77, 0.055, 0.12, 0.4)
		assert.Equal(t, a, b)
	})

	t.Run("free material yields zero price", func(t *testing.T) {
		quote := engine.ComputeQuote(100.0, 0.0, 0.08, 0.25)
		assert.Zero(t, quote.BasePrice)
		assert.Zero(t, quote.Price)
	})
}

func TestPricingEngine_CustomConfig(t *testing.T) {
	engine := NewPricingEngine(DefaultPricingConfig())
	strict := NewPricingEngine(DefaultPricingConfig())
	strict.cfg.SurchargeMultiplier = 1.5

	assert.InDelta(t, 1.2, engine.SurchargeMultiplier(0.08, 0.4), 1e-9)
	assert.InDelta(t, 1.5, strict.SurchargeMultiplier(0.08, 0.4), 1e-9)
}
