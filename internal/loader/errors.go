package loader

import "errors"

// Sentinel kinds for roster load errors.
var (
	// ErrLoad covers transport failures and non-success HTTP statuses.
	ErrLoad = errors.New("roster load failed")
	// ErrDecode covers payloads that are not parseable JSON at all.
	ErrDecode = errors.New("roster decode failed")
)
