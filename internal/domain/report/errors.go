package report

import "errors"

var (
	// ErrInvalidRange rejects a requested range whose end precedes its
	// start. Bounds are never silently swapped.
	ErrInvalidRange = errors.New("to_date must not be before from_date")
)
