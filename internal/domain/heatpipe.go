package domain

import (
	"fmt"
	"math"
)

// HeatpipeConfig describes the heat-pipe bundle inside a single borehole.
// All pipes share the same dimensions and sit with their centers spaced
// uniformly on a circle around the borehole axis.
type HeatpipeConfig struct {
	// Count is the number of heat pipes in the borehole. Zero is a valid,
	// empty bundle.
	Count int `json:"count"`

	// Radii in meters. They must nest strictly:
	// PipeInnerRadius < PipeOuterRadius < InsulationOuterRadius <
	// PipeCircleRadius < BoreholeRadius.
	BoreholeRadius        float64 `json:"borehole_radius"`
	PipeCircleRadius      float64 `json:"pipe_circle_radius"`
	InsulationOuterRadius float64 `json:"insulation_outer_radius"`
	PipeOuterRadius       float64 `json:"pipe_outer_radius"`
	PipeInnerRadius       float64 `json:"pipe_inner_radius"`

	// Thermal conductivities in W/(m·K).
	BackfillConductivity   float64 `json:"backfill_conductivity"`
	InsulationConductivity float64 `json:"insulation_conductivity"`
	PipeConductivity       float64 `json:"pipe_conductivity"`
}

func (c HeatpipeConfig) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("pipe count %d is negative: %w", c.Count, ErrInvalidLayout)
	}
	positive := []struct {
		name  string
		value float64
	}{
		{"pipe inner radius", c.PipeInnerRadius},
		{"pipe outer radius", c.PipeOuterRadius},
		{"insulation outer radius", c.InsulationOuterRadius},
		{"pipe circle radius", c.PipeCircleRadius},
		{"borehole radius", c.BoreholeRadius},
		{"backfill conductivity", c.BackfillConductivity},
		{"insulation conductivity", c.InsulationConductivity},
		{"pipe conductivity", c.PipeConductivity},
	}
	for _, p := range positive {
		if p.value <= 0 || math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return fmt.Errorf("%s must be a positive finite number, got %g: %w", p.name, p.value, ErrInvalidLayout)
		}
	}
	nested := positive[:5]
	for i := 1; i < len(nested); i++ {
		inner, outer := nested[i-1], nested[i]
		if inner.value >= outer.value {
			return fmt.Errorf("%s (%g m) must be smaller than %s (%g m): %w",
				inner.name, inner.value, outer.name, outer.value, ErrInvalidLayout)
		}
	}
	return nil
}

// Layout is a validated heat-pipe bundle. Construct it with NewLayout; the
// zero value is not usable.
type Layout struct {
	cfg HeatpipeConfig
}

// NewLayout validates cfg and returns the bundle layout. Violations of the
// radius nesting, non-positive radii or conductivities, and a negative pipe
// count are rejected with an error wrapping ErrInvalidLayout that names the
// offending parameter and its value.
func NewLayout(cfg HeatpipeConfig) (*Layout, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Layout{cfg: cfg}, nil
}

// Config returns the configuration the layout was built from.
func (l *Layout) Config() HeatpipeConfig {
	return l.cfg
}

// PipeCenters returns the center coordinates of every pipe in the borehole
// coordinate system, origin on the borehole axis. Pipe i sits on the circle
// of radius PipeCircleRadius at angle 2π·i/Count from the positive x axis,
// so a single pipe lands at (PipeCircleRadius, 0) and an empty bundle yields
// an empty slice.
func (l *Layout) PipeCenters() []Point {
	centers := make([]Point, l.cfg.Count)
	for i := range centers {
		angle := 2 * math.Pi * float64(i) / float64(l.cfg.Count)
		centers[i] = Point{
			X: l.cfg.PipeCircleRadius * math.Cos(angle),
			Y: l.cfg.PipeCircleRadius * math.Sin(angle),
		}
	}
	return centers
}

func (l *Layout) String() string {
	return fmt.Sprintf("heatpipe layout: %d pipes on r=%g m circle in r=%g m borehole (insulation %g m, pipe %g/%g m)",
		l.cfg.Count, l.cfg.PipeCircleRadius, l.cfg.BoreholeRadius,
		l.cfg.InsulationOuterRadius, l.cfg.PipeOuterRadius, l.cfg.PipeInnerRadius)
}

// Point is a Cartesian coordinate in the borehole cross-section plane,
// in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
