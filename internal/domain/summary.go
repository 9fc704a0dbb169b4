package domain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChannelSummary holds descriptive statistics of one weather channel.
type ChannelSummary struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// SeriesSummary aggregates per-channel statistics of an extracted series.
// It is what operators read in the run log and the prepared-inputs file to
// sanity-check a weather window before a multi-hour simulation burns on it.
type SeriesSummary struct {
	Steps            int            `json:"steps"`
	WindSpeed        ChannelSummary `json:"wind_speed"`
	Temperature      ChannelSummary `json:"temperature"`
	SnowfallRate     ChannelSummary `json:"snowfall_rate"`
	CloudFraction    ChannelSummary `json:"cloud_fraction"`
	RelativeHumidity ChannelSummary `json:"relative_humidity"`
	Precipitation    ChannelSummary `json:"precipitation"`
}

// Summarize computes per-channel statistics of a series. An empty series
// yields a zero summary.
func Summarize(s Series) SeriesSummary {
	return SeriesSummary{
		Steps:            s.Len(),
		WindSpeed:        summarizeChannel(s.WindSpeed),
		Temperature:      summarizeChannel(s.Temperature),
		SnowfallRate:     summarizeChannel(s.SnowfallRate),
		CloudFraction:    summarizeChannel(s.CloudFraction),
		RelativeHumidity: summarizeChannel(s.RelativeHumidity),
		Precipitation:    summarizeChannel(s.Precipitation),
	}
}

func summarizeChannel(xs []float64) ChannelSummary {
	if len(xs) == 0 {
		return ChannelSummary{}
	}
	cs := ChannelSummary{
		Min:  floats.Min(xs),
		Max:  floats.Max(xs),
		Mean: stat.Mean(xs, nil),
	}
	// Sample standard deviation needs at least two values.
	if len(xs) > 1 {
		cs.StdDev = stat.StdDev(xs, nil)
	}
	return cs
}
