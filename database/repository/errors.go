package repository

import "errors"

var (
	// ErrNotFound is returned when no listing (or booking) matches.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict is returned when a compare-and-swap write loses
	// the race: the listing changed between read and commit. Callers
	// re-read the snapshot, re-validate and retry.
	ErrVersionConflict = errors.New("listing version conflict")
)
