package database

import "errors"

var (
	// ErrUnavailable is returned by every store method when no database is
	// configured. Read paths treat it as the signal to synthesize results
	// from the seed catalog; write paths surface it as 503.
	ErrUnavailable = errors.New("database not configured")

	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
)
