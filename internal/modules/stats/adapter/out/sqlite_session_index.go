package out

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sleepmaster/internal/modules/stats/domain"
	statsout "sleepmaster/internal/modules/stats/port/out"
)

// SQLiteSessionIndex reads the sessions table the tracker projector writes.
// It shares the projector's database handle rather than opening the file a
// second time.
type SQLiteSessionIndex struct {
	db *sql.DB
}

func NewSQLiteSessionIndex(db *sql.DB) statsout.SessionIndex {
	return &SQLiteSessionIndex{db: db}
}

func (s *SQLiteSessionIndex) NightsSince(ctx context.Context, since time.Time) ([]domain.Night, error) {
	const query = `
SELECT started_at, duration_min, awakenings, score
FROM sessions
WHERE started_at > ?
ORDER BY started_at DESC;
`
	rows, err := s.db.QueryContext(ctx, query, since.Format("2006-01-02T15:04:05Z07:00"))
	if err != nil {
		return nil, fmt.Errorf("query nights: %w", err)
	}
	defer func() { _ = rows.Close() }()

	nights := []domain.Night{}
	for rows.Next() {
		var startedAt string
		night := domain.Night{}
		if err := rows.Scan(&startedAt, &night.DurationMin, &night.Awakenings, &night.Score); err != nil {
			return nil, fmt.Errorf("scan night: %w", err)
		}
		ts, err := time.Parse(time.RFC3339, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse night timestamp: %w", err)
		}
		night.StartedAt = ts
		nights = append(nights, night)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nights: %w", err)
	}
	return nights, nil
}
