package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrNotLoaded means Start has not run yet.
	ErrNotLoaded = errors.New("roster not loaded")
)
