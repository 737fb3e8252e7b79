package db

import "errors"

// Domain-level database error sentinels.
var (
	// Lookup statistics errors
	ErrInvalidLookup = errors.New("lookup label and outcome are required")
)
