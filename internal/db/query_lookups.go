package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"macromate/internal/models"
)

const incrementQueryLookupSQL = `
	INSERT INTO query_lookups (label, outcome, count, last_seen_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (label, outcome) DO UPDATE
	SET count = query_lookups.count + EXCLUDED.count, last_seen_at = NOW()
`

// IncrementQueryLookups upserts buffered lookup counts in one round trip.
func (d *DB) IncrementQueryLookups(ctx context.Context, deltas []models.QueryLookupDelta) error {
	if len(deltas) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, delta := range deltas {
		if delta.Label == "" || delta.Outcome == "" {
			return ErrInvalidLookup
		}
		batch.Queue(incrementQueryLookupSQL, delta.Label, delta.Outcome, delta.Count)
	}

	br := d.Pool.SendBatch(ctx, batch)
	for _, delta := range deltas {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to increment lookup %s/%s: %w", delta.Label, delta.Outcome, err)
		}
	}
	return br.Close()
}

// GetAllQueryLookups returns all lookup rows for metrics export.
func (d *DB) GetAllQueryLookups(ctx context.Context) ([]models.QueryLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT label, outcome, count, last_seen_at FROM query_lookups ORDER BY label, outcome`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.QueryLookup
	for rows.Next() {
		var l models.QueryLookup
		if err := rows.Scan(&l.Label, &l.Outcome, &l.Count, &l.LastSeenAt); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
