package domain

// Record is one hourly weather observation with its column roles already
// resolved by the loading layer.
type Record struct {
	Month         int     `json:"month"`
	Day           int     `json:"day"`
	Precipitation float64 `json:"precipitation"` // mm/h
	Temperature   float64 `json:"temperature"`   // °C
	Humidity      float64 `json:"humidity"`      // percent, 0–100
	WindSpeed     float64 `json:"wind_speed"`    // m/s
	CloudOctants  float64 `json:"cloud_octants"` // eighths of sky, 0–8
}

// Table is a chronologically ordered sequence of hourly records.
type Table []Record

// Series holds the six derived weather channels of an extraction window,
// index-aligned so position i of every slice describes the same hour.
type Series struct {
	WindSpeed        []float64 `json:"wind_speed"`        // m/s
	Temperature      []float64 `json:"temperature"`       // °C
	SnowfallRate     []float64 `json:"snowfall_rate"`     // mm/h, zero where it rains
	CloudFraction    []float64 `json:"cloud_fraction"`    // 0–1
	RelativeHumidity []float64 `json:"relative_humidity"` // 0–1
	Precipitation    []float64 `json:"precipitation"`     // mm/h, unfiltered
}

// Len returns the number of timesteps in the series.
func (s Series) Len() int {
	return len(s.WindSpeed)
}
