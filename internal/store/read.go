package store

import (
	"context"
	"fmt"
	"time"

	"github.com/roach88/gauge/internal/series"
)

// ListReadings returns all readings for a series in recording order.
// Ties on recorded_at are broken by id for deterministic listings.
// Returns an empty slice (not nil) when the series has no readings.
func (s *Store) ListReadings(ctx context.Context, name string) ([]Reading, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, series, value, recorded_at
		FROM readings
		WHERE series = ?
		ORDER BY recorded_at ASC, id COLLATE BINARY ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	defer rows.Close()

	readings := []Reading{}
	for rows.Next() {
		var r Reading
		var recordedAt int64
		if err := rows.Scan(&r.ID, &r.Series, &r.Value, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan reading: %w", err)
		}
		r.RecordedAt = time.Unix(0, recordedAt).UTC()
		readings = append(readings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate readings: %w", err)
	}

	return readings, nil
}

// SeriesNames returns the distinct series names present in the log,
// sorted for deterministic output.
func (s *Store) SeriesNames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT series FROM readings
		ORDER BY series COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query series names: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan series name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate series names: %w", err)
	}

	return names, nil
}

// Summarize rebuilds the running-accumulator summary for a series from
// the log. The log is the source of truth; nothing is cached.
func (s *Store) Summarize(ctx context.Context, name string) (series.Summary, error) {
	readings, err := s.ListReadings(ctx, name)
	if err != nil {
		return series.Summary{}, err
	}

	acc := series.NewAccumulator(name)
	for _, r := range readings {
		acc.Observe(r.Value, r.RecordedAt)
	}
	return acc.Snapshot(), nil
}

// Values returns just the observed values of a series in recording
// order, for feeding the observation-series quantity constructor.
func (s *Store) Values(ctx context.Context, name string) ([]float64, error) {
	readings, err := s.ListReadings(ctx, name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(readings))
	for i, r := range readings {
		values[i] = r.Value
	}
	return values, nil
}
