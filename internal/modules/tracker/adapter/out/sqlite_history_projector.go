package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"sleepmaster/internal/modules/tracker/domain"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector mirrors completed sessions into a sqlite table so
// the stats module can aggregate without re-reading the JSON record.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (*SQLiteHistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	p := &SQLiteHistoryProjector{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  ended_at TEXT NOT NULL,
  duration_min INTEGER NOT NULL,
  deep_sleep_min INTEGER NOT NULL,
  light_sleep_min INTEGER NOT NULL,
  awakenings INTEGER NOT NULL,
  score INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Upsert(ctx context.Context, session domain.CompletedSession) error {
	const stmt = `
INSERT INTO sessions (id, started_at, ended_at, duration_min, deep_sleep_min, light_sleep_min, awakenings, score)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  duration_min=excluded.duration_min,
  deep_sleep_min=excluded.deep_sleep_min,
  light_sleep_min=excluded.light_sleep_min,
  awakenings=excluded.awakenings,
  score=excluded.score;
`
	_, err := p.db.ExecContext(ctx, stmt,
		session.ID,
		session.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		session.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		session.DurationMin,
		session.DeepSleepMin,
		session.LightSleepMin,
		session.Awakenings,
		session.Score,
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

// DB exposes the handle so the stats index can share the same database file.
func (p *SQLiteHistoryProjector) DB() *sql.DB {
	return p.db
}

func (p *SQLiteHistoryProjector) Close() error {
	return p.db.Close()
}
