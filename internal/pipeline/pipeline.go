// Package pipeline assembles simulation inputs from the configured geometry
// and weather sources.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/couchcryptid/geomelt-input-prep/internal/domain"
)

// TableLoader reads the hourly observation table from its source.
type TableLoader interface {
	Load(ctx context.Context) (domain.Table, error)
}

// Params selects what one run prepares.
type Params struct {
	Heatpipe   domain.HeatpipeConfig
	Steps      int
	StartMonth int
	StartDay   int
}

// PreparedInputs is the complete driver set for a simulation run: the
// validated bundle geometry and the extracted weather series, stamped with a
// run identity so downstream results can be traced back to their inputs.
type PreparedInputs struct {
	RunID          string                `json:"run_id"`
	PreparedAt     time.Time             `json:"prepared_at"`
	Heatpipe       domain.HeatpipeConfig `json:"heatpipe"`
	PipeCenters    []domain.Point        `json:"pipe_centers"`
	StartMonth     int                   `json:"start_month"`
	StartDay       int                   `json:"start_day"`
	RequestedSteps int                   `json:"requested_steps"`
	Series         domain.Series         `json:"series"`
	Summary        domain.SeriesSummary  `json:"summary"`
}

// Preparer runs the preparation stage.
type Preparer struct {
	loader TableLoader
	logger *slog.Logger
}

// New creates a Preparer reading weather data through loader.
func New(loader TableLoader, logger *slog.Logger) *Preparer {
	return &Preparer{loader: loader, logger: logger}
}

// Prepare validates the geometry, loads the weather table, and extracts the
// requested window. The produced series may be shorter or longer than
// params.Steps when the window overflows the table; the mismatch is logged
// and recorded in the summary rather than treated as an error.
func (p *Preparer) Prepare(ctx context.Context, params Params) (*PreparedInputs, error) {
	started := clock.Now()

	layout, err := domain.NewLayout(params.Heatpipe)
	if err != nil {
		return nil, fmt.Errorf("configure heat-pipe layout: %w", err)
	}
	p.logger.Info("heat-pipe layout configured",
		"pipes", params.Heatpipe.Count,
		"borehole_radius_m", params.Heatpipe.BoreholeRadius)

	table, err := p.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load weather table: %w", err)
	}
	p.logger.Info("weather table loaded", "rows", len(table))

	series, err := domain.ExtractWindow(table, params.Steps, params.StartMonth, params.StartDay)
	if err != nil {
		return nil, fmt.Errorf("extract weather window: %w", err)
	}
	if series.Len() != params.Steps {
		p.logger.Warn("weather window does not match the requested step count",
			"requested_steps", params.Steps,
			"actual_steps", series.Len())
	}

	out := &PreparedInputs{
		RunID:          uuid.NewString(),
		PreparedAt:     clock.Now().UTC(),
		Heatpipe:       params.Heatpipe,
		PipeCenters:    layout.PipeCenters(),
		StartMonth:     params.StartMonth,
		StartDay:       params.StartDay,
		RequestedSteps: params.Steps,
		Series:         series,
		Summary:        domain.Summarize(series),
	}

	p.logger.Info("inputs prepared",
		"run_id", out.RunID,
		"steps", series.Len(),
		"pipes", params.Heatpipe.Count,
		"duration", clock.Since(started))
	return out, nil
}
