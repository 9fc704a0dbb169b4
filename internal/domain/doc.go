// Package domain models the physical inputs of a geothermal snow-melt
// simulation: the heat-pipe bundle geometry inside a borehole, and the hourly
// weather driver series extracted from a station observation table.
//
// # Weather Table
//
// Observations come from an hourly station export in the DWD (Deutscher
// Wetterdienst) style, one row per hour in chronological order. The loading
// layer resolves column positions, so records here carry roles, not columns:
//
//	month          calendar month of the observation, 1–12
//	day            calendar day of the observation, 1–31
//	precipitation  total precipitation during the hour, mm/h
//	temperature    ambient air temperature, °C
//	humidity       relative humidity, percent (0–100)
//	wind speed     mean wind speed, m/s
//	cloud octants  sky coverage in eighths, 0 (clear) – 8 (overcast)
//
// The hour-of-day column present in raw exports is not carried: a start date
// is located by its first row, which is that day's first hour. Each
// (month, day) pair is assumed to locate a unique first row, which holds for
// exports covering at most one year.
//
// # Channel Derivation
//
// [ExtractWindow] turns a window of table rows into six index-aligned series:
//
//	wind speed         raw, m/s
//	temperature        raw, °C
//	snowfall rate      precipitation, forced to 0 where temperature ≥ 1 °C
//	cloud fraction     cloud octants / 8, in [0,1]
//	relative humidity  humidity / 100, in [0,1]
//	precipitation      raw, mm/h (never zeroed)
//
// The 1 °C threshold encodes the assumption that precipitation at or above it
// comes down as rain, which adds no snow load to the heated surface. Rain
// still matters for the surface energy balance, so the unfiltered
// precipitation channel is kept alongside the snowfall rate.
//
// # Window Selection
//
// A window of requested length may run past the end of the table. When that
// happens and the start row is not row 0, the selection wraps to the top of
// the table and covers every row exactly once, so the produced series spans
// the whole table rather than the requested step count. See [ExtractWindow].
//
// # Borehole Geometry
//
// A heat-pipe bundle is described by five radii that must nest strictly
// (pipe inner < pipe outer < insulation outer < pipe circle < borehole) and
// by the thermal conductivities of backfill, insulation, and pipe material.
// [NewLayout] rejects configurations that violate the nesting, because the
// downstream thermal-resistance model silently assumes it. Pipe centers are
// spaced uniformly on the pipe circle, pipe i at angle 2π·i/count from the
// positive x axis. See [Layout.PipeCenters].
package domain
