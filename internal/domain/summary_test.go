package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("per-channel statistics", func(t *testing.T) {
		s := Series{
			WindSpeed:        []float64{1, 2, 3, 4},
			Temperature:      []float64{-5, 5, 0, 0},
			SnowfallRate:     []float64{0, 0, 0, 0},
			CloudFraction:    []float64{0, 1, 0.5, 0.5},
			RelativeHumidity: []float64{0.5, 0.5, 0.5, 0.5},
			Precipitation:    []float64{2, 0, 0, 0},
		}

		sum := Summarize(s)

		assert.Equal(t, 4, sum.Steps)
		assert.Equal(t, 1.0, sum.WindSpeed.Min)
		assert.Equal(t, 4.0, sum.WindSpeed.Max)
		assert.InDelta(t, 2.5, sum.WindSpeed.Mean, 1e-12)
		assert.InDelta(t, 1.2909944487358056, sum.WindSpeed.StdDev, 1e-12)

		assert.Equal(t, -5.0, sum.Temperature.Min)
		assert.Equal(t, 5.0, sum.Temperature.Max)
		assert.InDelta(t, 0, sum.Temperature.Mean, 1e-12)

		assert.Equal(t, 0.0, sum.SnowfallRate.Max)
		assert.InDelta(t, 0, sum.SnowfallRate.StdDev, 1e-15)

		assert.InDelta(t, 0.5, sum.CloudFraction.Mean, 1e-12)
		assert.InDelta(t, 0, sum.RelativeHumidity.StdDev, 1e-15)

		assert.Equal(t, 2.0, sum.Precipitation.Max)
		assert.InDelta(t, 0.5, sum.Precipitation.Mean, 1e-12)
	})

	t.Run("single timestep has zero spread", func(t *testing.T) {
		s := Series{
			WindSpeed:        []float64{3.5},
			Temperature:      []float64{-1},
			SnowfallRate:     []float64{0.2},
			CloudFraction:    []float64{1},
			RelativeHumidity: []float64{0.9},
			Precipitation:    []float64{0.2},
		}

		sum := Summarize(s)

		assert.Equal(t, 1, sum.Steps)
		assert.Equal(t, 3.5, sum.WindSpeed.Min)
		assert.Equal(t, 3.5, sum.WindSpeed.Max)
		assert.Equal(t, 3.5, sum.WindSpeed.Mean)
		assert.Equal(t, 0.0, sum.WindSpeed.StdDev)
	})

	t.Run("empty series yields a zero summary", func(t *testing.T) {
		assert.Equal(t, SeriesSummary{}, Summarize(Series{}))
	})

	t.Run("steps reflect the produced window, not the request", func(t *testing.T) {
		table := tracerTable(100, 5)

		s, err := ExtractWindow(table, 10, 1, 20)

		require.NoError(t, err)
		assert.Equal(t, 100, Summarize(s).Steps)
	})
}
