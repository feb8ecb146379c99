package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Reading is one observed value of a named series.
type Reading struct {
	ID         string
	Series     string
	Value      float64
	RecordedAt time.Time
}

// WriteReading appends a reading to the log and returns its generated
// ID. Uses ON CONFLICT(id) DO NOTHING so replaying a batch with
// pre-assigned IDs is idempotent.
func (s *Store) WriteReading(ctx context.Context, r Reading) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO readings (id, series, value, recorded_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		r.Series,
		r.Value,
		r.RecordedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("write reading: %w", err)
	}

	return r.ID, nil
}
