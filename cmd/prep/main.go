// Command prep turns a run configuration into the complete input set of a
// snow-melt simulation: it validates the borehole heat-pipe layout, extracts
// the configured weather window, and writes the prepared inputs as JSON,
// optionally together with an SVG drawing of the borehole cross-section.
//
// Usage:
//
//	go run ./cmd/prep -config run.yaml
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/couchcryptid/geomelt-input-prep/internal/adapter/svg"
	"github.com/couchcryptid/geomelt-input-prep/internal/adapter/weatherfile"
	"github.com/couchcryptid/geomelt-input-prep/internal/config"
	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
	"github.com/couchcryptid/geomelt-input-prep/internal/observability"
	"github.com/couchcryptid/geomelt-input-prep/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "run.yaml", "path to the run configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("preparation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("preparation complete")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	loader := weatherfile.NewLoader(cfg, logger)
	preparer := pipeline.New(loader, logger)

	out, err := preparer.Prepare(ctx, pipeline.Params{
		Heatpipe:   heatpipeConfig(cfg.Borehole),
		Steps:      cfg.Window.Steps,
		StartMonth: cfg.Window.StartMonth,
		StartDay:   cfg.Window.StartDay,
	})
	if err != nil {
		return err
	}

	if err := writeJSON(cfg.Output.InputsPath, out); err != nil {
		return fmt.Errorf("write prepared inputs: %w", err)
	}
	logger.Info("prepared inputs written", "path", cfg.Output.InputsPath, "run_id", out.RunID)

	if cfg.Output.CrossSectionSVG != "" {
		layout, err := domain.NewLayout(heatpipeConfig(cfg.Borehole))
		if err != nil {
			return fmt.Errorf("configure heat-pipe layout: %w", err)
		}
		renderer := svg.NewRenderer(logger)
		if err := renderer.RenderFile(cfg.Output.CrossSectionSVG, layout.CrossSection()); err != nil {
			return err
		}
		logger.Info("cross-section written", "path", cfg.Output.CrossSectionSVG)
	}
	return nil
}

func heatpipeConfig(b config.BoreholeConfig) domain.HeatpipeConfig {
	return domain.HeatpipeConfig{
		Count:                  b.PipeCount,
		BoreholeRadius:         b.BoreholeRadius,
		PipeCircleRadius:       b.PipeCircleRadius,
		InsulationOuterRadius:  b.InsulationOuterRadius,
		PipeOuterRadius:        b.PipeOuterRadius,
		PipeInnerRadius:        b.PipeInnerRadius,
		BackfillConductivity:   b.BackfillConductivity,
		InsulationConductivity: b.InsulationConductivity,
		PipeConductivity:       b.PipeConductivity,
	}
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}
