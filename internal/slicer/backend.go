// Package slicer estimates the material mass of a 3D model for given print
// parameters. The preferred backend shells out to an external slicing engine;
// a heuristic fallback keeps the pipeline functional on hosts without the
// engine installed.
package slicer

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/logger"
)

var (
	// ErrWeightNotFound is returned when the engine succeeded but its
	// output contained no recoverable filament mass figure.
	ErrWeightNotFound = errors.New("no filament weight in slicer output")
)

// EngineError means the slicing engine executed and reported failure. The
// engine has no structured error codes; Diagnostic carries its stderr text
// and is the only way to distinguish bad geometry from other failures.
type EngineError struct {
	Diagnostic string
}

// Error implements error.
func (e *EngineError) Error() string {
	return fmt.Sprintf("slicing engine failed: %s", e.Diagnostic)
}

// Params holds the print parameters of a single mass estimation.
type Params struct {
	// InfillPercent is the interior fill density (0-100).
	InfillPercent int
	// LayerHeight is the layer height in millimeters.
	LayerHeight float64
	// NozzleDiameter is the nozzle diameter in millimeters.
	NozzleDiameter float64
	// FilamentDensity is the filament density in g/cm³.
	FilamentDensity float64
}

// Backend estimates the material mass in grams for a geometry file. Slicing
// is deterministic and computationally nontrivial, so failed invocations are
// surfaced immediately, never retried.
type Backend interface {
	// EstimateMass returns the estimated produced material mass in grams.
	EstimateMass(ctx context.Context, geometryPath string, p Params) (float64, error)
	// Name identifies the backend in logs and metrics.
	Name() string
}

// Detect selects the slicing backend once at startup: the engine backend
// when the configured binary is on PATH, the heuristic fallback otherwise.
// The selection is an environment condition, not a per-request choice.
func Detect(cfg config.SlicerConfig) Backend {
	path, err := exec.LookPath(cfg.Binary)
	if err != nil {
		logger.Logger().Warn().
			Str("binary", cfg.Binary).
			Msg("Slicing engine not found, falling back to heuristic mass estimation")
		return NewHeuristicBackend(cfg)
	}

	logger.Logger().Info().
		Str("binary", path).
		Msg("Slicing engine detected")
	return NewEngineBackend(cfg)
}
