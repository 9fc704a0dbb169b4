package domain

import "fmt"

// rainTemperature is the ambient temperature, in °C, at and above which
// precipitation is assumed to fall as rain rather than snow.
const rainTemperature = 1.0

// ExtractWindow locates the first row of table whose calendar date matches
// (startMonth, startDay) and derives the six weather channels over a window
// of rows beginning there.
//
// The window normally covers steps consecutive rows. When it would run past
// the end of the table and the start row is not row 0, the selection wraps
// to the top of the table and covers every row exactly once, so the result
// holds len(table) timesteps rather than steps; anchored at row 0 it is
// simply the whole table. Callers that need exactly steps timesteps must
// check Series.Len. A non-positive steps yields an empty series.
//
// An empty table is rejected with ErrEmptyTable, an unmatched start date
// with ErrStartDateNotFound.
func ExtractWindow(table Table, steps, startMonth, startDay int) (Series, error) {
	if len(table) == 0 {
		return Series{}, fmt.Errorf("extract %d-step window from %02d-%02d: %w",
			steps, startMonth, startDay, ErrEmptyTable)
	}

	start := -1
	for i, rec := range table {
		if rec.Month == startMonth && rec.Day == startDay {
			start = i
			break
		}
	}
	if start < 0 {
		return Series{}, fmt.Errorf("no row matches month=%d day=%d in table of %d rows: %w",
			startMonth, startDay, len(table), ErrStartDateNotFound)
	}

	rows := windowRows(len(table), start, steps)

	s := Series{
		WindSpeed:        make([]float64, len(rows)),
		Temperature:      make([]float64, len(rows)),
		SnowfallRate:     make([]float64, len(rows)),
		CloudFraction:    make([]float64, len(rows)),
		RelativeHumidity: make([]float64, len(rows)),
		Precipitation:    make([]float64, len(rows)),
	}
	for i, row := range rows {
		rec := table[row]
		s.WindSpeed[i] = rec.WindSpeed
		s.Temperature[i] = rec.Temperature
		if rec.Temperature < rainTemperature {
			s.SnowfallRate[i] = rec.Precipitation
		}
		s.CloudFraction[i] = rec.CloudOctants / 8
		s.RelativeHumidity[i] = rec.Humidity / 100
		s.Precipitation[i] = rec.Precipitation
	}
	return s, nil
}

// windowRows selects the table indices of the extraction window starting at
// start. A window that fits stays contiguous; one that overflows wraps
// around and covers all tableLen rows exactly once, which for start 0
// degenerates to the table in original order.
func windowRows(tableLen, start, steps int) []int {
	if steps <= 0 {
		return nil
	}
	if start+steps <= tableLen {
		rows := make([]int, steps)
		for i := range rows {
			rows[i] = start + i
		}
		return rows
	}
	rows := make([]int, tableLen)
	for i := range rows {
		rows[i] = (start + i) % tableLen
	}
	return rows
}
