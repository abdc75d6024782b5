package service

import (
	"math"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/domain/model"
)

// DefaultPricingConfig returns the standard quality surcharge rules: layer
// heights at or below 0.08 mm and nozzles below 0.4 mm each add 20%.
func DefaultPricingConfig() config.PricingConfig {
	return config.PricingConfig{
		FineLayerThreshold:  0.08,
		FineNozzleThreshold: 0.4,
		SurchargeMultiplier: 1.2,
	}
}

// PricingEngine turns an estimated mass and a unit price into a final quote
// price. It is pure arithmetic over already-validated inputs; defensive
// validation belongs at the boundary before invocation.
type PricingEngine struct {
	cfg config.PricingConfig
}

// NewPricingEngine creates a PricingEngine with the given surcharge rules.
func NewPricingEngine(cfg config.PricingConfig) *PricingEngine {
	return &PricingEngine{cfg: cfg}
}

// BasePrice computes the pre-surcharge price. The mass is rounded to the
// nearest whole gram BEFORE multiplying by the unit price, then the product
// is rounded to 2 decimal places. The rounding order is load-bearing: it
// must match the storefront's displayed prices exactly.
func (e *PricingEngine) BasePrice(massGrams, unitPricePerGram float64) float64 {
	return model.Round2(math.Round(massGrams) * unitPricePerGram)
}

// SurchargeMultiplier returns the combined quality multiplier for the given
// print parameters. The fine-layer and fine-nozzle rules are independent and
// compose multiplicatively: both triggered yields 1.2 * 1.2 = 1.44.
func (e *PricingEngine) SurchargeMultiplier(layerHeight, nozzleDiameter float64) float64 {
	multiplier := 1.0
	if layerHeight <= e.cfg.FineLayerThreshold {
		multiplier *= e.cfg.SurchargeMultiplier
	}
	if nozzleDiameter < e.cfg.FineNozzleThreshold {
		multiplier *= e.cfg.SurchargeMultiplier
	}
	return multiplier
}

// ComputeQuote derives the priced quote for an estimated mass. It is a pure
// function: identical inputs always yield identical output.
func (e *PricingEngine) ComputeQuote(massGrams, unitPricePerGram, layerHeight, nozzleDiameter float64) model.Quote {
	base := e.BasePrice(massGrams, unitPricePerGram)
	final := model.Round2(base * e.SurchargeMultiplier(layerHeight, nozzleDiameter))

	return model.Quote{
		Grams:        model.Round2(massGrams),
		BaseMass:     math.Round(massGrams),
		BasePrice:    base,
		Price:        final,
		PricePerGram: unitPricePerGram,
		Parameters: model.PrintParameters{
			LayerHeight:    layerHeight,
			NozzleDiameter: nozzleDiameter,
		},
	}
}
