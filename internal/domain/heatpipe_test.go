package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validHeatpipeConfig() HeatpipeConfig {
	return HeatpipeConfig{
		Count:                  6,
		BoreholeRadius:         0.076,
		PipeCircleRadius:       0.064,
		InsulationOuterRadius:  0.016,
		PipeOuterRadius:        0.012,
		PipeInnerRadius:        0.010,
		BackfillConductivity:   2.0,
		InsulationConductivity: 0.03,
		PipeConductivity:       14.0,
	}
}

func TestNewLayout(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		layout, err := NewLayout(validHeatpipeConfig())
		require.NoError(t, err)
		assert.Equal(t, validHeatpipeConfig(), layout.Config())
	})

	t.Run("zero pipes is a valid empty bundle", func(t *testing.T) {
		cfg := validHeatpipeConfig()
		cfg.Count = 0
		layout, err := NewLayout(cfg)
		require.NoError(t, err)
		assert.Empty(t, layout.PipeCenters())
	})

	tests := []struct {
		name    string
		mutate  func(*HeatpipeConfig)
		wantMsg string
	}{
		{
			name:    "negative pipe count",
			mutate:  func(c *HeatpipeConfig) { c.Count = -1 },
			wantMsg: "count",
		},
		{
			name:    "pipe inner radius not below pipe outer radius",
			mutate:  func(c *HeatpipeConfig) { c.PipeInnerRadius = c.PipeOuterRadius },
			wantMsg: "pipe inner radius",
		},
		{
			name:    "pipe outer radius above insulation",
			mutate:  func(c *HeatpipeConfig) { c.PipeOuterRadius = 0.02 },
			wantMsg: "pipe outer radius",
		},
		{
			name:    "insulation outside pipe circle",
			mutate:  func(c *HeatpipeConfig) { c.InsulationOuterRadius = 0.07 },
			wantMsg: "insulation outer radius",
		},
		{
			name:    "pipe circle outside borehole",
			mutate:  func(c *HeatpipeConfig) { c.PipeCircleRadius = 0.08 },
			wantMsg: "pipe circle radius",
		},
		{
			name:    "zero borehole radius",
			mutate:  func(c *HeatpipeConfig) { c.BoreholeRadius = 0 },
			wantMsg: "borehole radius",
		},
		{
			name:    "negative conductivity",
			mutate:  func(c *HeatpipeConfig) { c.InsulationConductivity = -0.03 },
			wantMsg: "insulation conductivity",
		},
		{
			name:    "NaN radius",
			mutate:  func(c *HeatpipeConfig) { c.PipeCircleRadius = math.NaN() },
			wantMsg: "pipe circle radius",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validHeatpipeConfig()
			tt.mutate(&cfg)

			_, err := NewLayout(cfg)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestPipeCenters(t *testing.T) {
	t.Run("single pipe lands on the positive x axis", func(t *testing.T) {
		cfg := validHeatpipeConfig()
		cfg.Count = 1
		layout, err := NewLayout(cfg)
		require.NoError(t, err)

		centers := layout.PipeCenters()

		require.Len(t, centers, 1)
		assert.InDelta(t, cfg.PipeCircleRadius, centers[0].X, 1e-15)
		assert.InDelta(t, 0, centers[0].Y, 1e-15)
	})

	t.Run("four pipes land on the axes", func(t *testing.T) {
		cfg := validHeatpipeConfig()
		cfg.Count = 4
		layout, err := NewLayout(cfg)
		require.NoError(t, err)

		centers := layout.PipeCenters()

		require.Len(t, centers, 4)
		r := cfg.PipeCircleRadius
		expected := []Point{{X: r}, {Y: r}, {X: -r}, {Y: -r}}
		for i, want := range expected {
			assert.InDelta(t, want.X, centers[i].X, 1e-12, "pipe %d x", i)
			assert.InDelta(t, want.Y, centers[i].Y, 1e-12, "pipe %d y", i)
		}
	})

	t.Run("uniform angular spacing", func(t *testing.T) {
		cfg := validHeatpipeConfig()
		cfg.Count = 7
		layout, err := NewLayout(cfg)
		require.NoError(t, err)

		centers := layout.PipeCenters()

		require.Len(t, centers, 7)
		for i, c := range centers {
			assert.InDelta(t, cfg.PipeCircleRadius, math.Hypot(c.X, c.Y), 1e-12, "pipe %d distance from axis", i)

			angle := math.Atan2(c.Y, c.X)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			assert.InDelta(t, 2*math.Pi*float64(i)/7, angle, 1e-12, "pipe %d angle", i)
		}
	})
}

func TestLayoutString(t *testing.T) {
	layout, err := NewLayout(validHeatpipeConfig())
	require.NoError(t, err)

	s := layout.String()

	assert.Contains(t, s, "6 pipes")
	assert.Contains(t, s, "0.076")
}
