package domain

import "errors"

// Sentinel errors returned by the domain core. Call sites wrap them with the
// offending values; match with errors.Is.
var (
	// ErrInvalidLayout reports a heat-pipe configuration whose radii do not
	// nest strictly or whose parameters are out of range.
	ErrInvalidLayout = errors.New("invalid heat-pipe layout")

	// ErrEmptyTable reports a weather table with no rows.
	ErrEmptyTable = errors.New("weather table is empty")

	// ErrStartDateNotFound reports a start date that matches no table row.
	ErrStartDateNotFound = errors.New("start date not found in weather table")
)
