package search

import "errors"

var (
	// ErrInvalidPattern reports a missing, unreadable, or empty pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidLandscape reports a missing, unreadable, or empty
	// landscape.
	ErrInvalidLandscape = errors.New("invalid landscape")

	// ErrPatternNotSet reports a call made out of order: the pattern
	// must be loaded before scanning, and a scan must precede
	// detection. This is a usage error, not a data error.
	ErrPatternNotSet = errors.New("pattern not set")
)
