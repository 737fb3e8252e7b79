package models

import "time"

// QueryLookup is a resolution count for a label (topic id, catalog or kind) by outcome.
type QueryLookup struct {
	Label      string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}

// QueryLookupDelta is a buffered increment waiting to be flushed.
type QueryLookupDelta struct {
	Label   string
	Outcome string
	Count   int64
}
