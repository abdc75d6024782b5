package slicer

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/logger"
	"github.com/guttosm/print-quote-service/internal/metrics"
)

const (
	// gramsPerMB is the rough volume proxy: 10 g of material per MB of
	// geometry file. File size is not a physically meaningful proxy across
	// encodings; the heuristic only keeps the pipeline functional without
	// the engine and is held to no precision guarantees.
	gramsPerMB = 10.0
	// minGrams floors every heuristic estimate.
	minGrams = 1.0
)

// HeuristicBackend estimates mass from the geometry file's byte size, scaled
// by an infill-dependent multiplier and the requested filament density.
type HeuristicBackend struct {
	cfg config.SlicerConfig
}

// NewHeuristicBackend creates the fallback backend.
func NewHeuristicBackend(cfg config.SlicerConfig) *HeuristicBackend {
	return &HeuristicBackend{cfg: cfg}
}

// Name implements Backend.
func (b *HeuristicBackend) Name() string { return "heuristic" }

// EstimateMass implements Backend. The only failure mode is an unreadable
// input file.
func (b *HeuristicBackend) EstimateMass(_ context.Context, geometryPath string, p Params) (float64, error) {
	start := time.Now()

	info, err := os.Stat(geometryPath)
	if err != nil {
		metrics.RecordSlice(b.Name(), time.Since(start), "error")
		return 0, fmt.Errorf("stat geometry file: %w", err)
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	base := sizeMB * gramsPerMB

	// 30% of the full estimate at 0% infill, 100% at full infill.
	infillMultiplier := 0.3 + 0.7*float64(p.InfillPercent)/100
	grams := base * infillMultiplier * (p.FilamentDensity / b.cfg.ReferenceDensity)
	if grams < minGrams {
		grams = minGrams
	}

	logger.Logger().Debug().
		Float64("file_mb", sizeMB).
		Int("infill", p.InfillPercent).
		Float64("grams", grams).
		Msg("Heuristic mass estimate")

	metrics.RecordSlice(b.Name(), time.Since(start), "success")
	return grams, nil
}
