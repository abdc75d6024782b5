package slicer

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/guttosm/print-quote-service/config"
	"github.com/guttosm/print-quote-service/internal/metrics"
)

// EngineBackend estimates mass by running the external slicing engine and
// scraping the produced G-code for the filament usage line.
type EngineBackend struct {
	cfg config.SlicerConfig
}

// NewEngineBackend creates a backend for the configured engine binary.
func NewEngineBackend(cfg config.SlicerConfig) *EngineBackend {
	return &EngineBackend{cfg: cfg}
}

// Name implements Backend.
func (b *EngineBackend) Name() string { return "engine" }

// EstimateMass implements Backend. The geometry file is sliced into a
// temporary G-code file which is scanned for the filament mass figure.
func (b *EngineBackend) EstimateMass(ctx context.Context, geometryPath string, p Params) (float64, error) {
	outDir, err := os.MkdirTemp("", "slice-*")
	if err != nil {
		return 0, fmt.Errorf("create slice output dir: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(outDir)
	}()
	gcodePath := filepath.Join(outDir, "output.gcode")

	start := time.Now()
	args := b.buildArgs(geometryPath, gcodePath, p)

	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, b.cfg.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		metrics.RecordSlice(b.Name(), time.Since(start), "error")
		if ctx.Err() != nil {
			return 0, fmt.Errorf("slicing engine: %w", ctx.Err())
		}
		return 0, &EngineError{Diagnostic: strings.TrimSpace(stderr.String())}
	}

	gcode, err := os.Open(gcodePath)
	if err != nil {
		metrics.RecordSlice(b.Name(), time.Since(start), "error")
		return 0, fmt.Errorf("open sliced output: %w", err)
	}
	defer func() {
		_ = gcode.Close()
	}()

	grams, err := ParseFilamentWeight(gcode)
	if err != nil {
		metrics.RecordSlice(b.Name(), time.Since(start), "unparseable")
		return 0, err
	}

	metrics.RecordSlice(b.Name(), time.Since(start), "success")
	return grams, nil
}

// buildArgs assembles the engine command line. Infill is clamped to the
// configured maximum (the engine mishandles 100%) and the nozzle diameter is
// floored at the configured minimum.
func (b *EngineBackend) buildArgs(geometryPath, gcodePath string, p Params) []string {
	infill := p.InfillPercent
	if infill > b.cfg.MaxInfillPercent {
		infill = b.cfg.MaxInfillPercent
	}
	nozzle := p.NozzleDiameter
	if nozzle < b.cfg.MinNozzleDiameter {
		nozzle = b.cfg.MinNozzleDiameter
	}

	return []string{
		"-g", geometryPath,
		"--output", gcodePath,
		fmt.Sprintf("--layer-height=%g", p.LayerHeight),
		fmt.Sprintf("--fill-density=%d%%", infill),
		fmt.Sprintf("--filament-diameter=%g", b.cfg.FilamentDiameter),
		fmt.Sprintf("--filament-density=%g", p.FilamentDensity),
		"--support-material=1",
		"--support-material-style=organic",
		"--support-material-angle=30",
		"--support-material-extruder=0",
		"--support-material-interface-extruder=0",
		"--fill-pattern=gyroid",
		fmt.Sprintf("--nozzle-diameter=%g", nozzle),
		fmt.Sprintf("--first-layer-height=%g", p.LayerHeight),
	}
}
