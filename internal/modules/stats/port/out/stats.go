package out

import (
	"context"
	"time"

	"sleepmaster/internal/modules/stats/domain"
)

// SessionIndex reads completed sessions that started after since,
// newest first.
type SessionIndex interface {
	NightsSince(ctx context.Context, since time.Time) ([]domain.Night, error)
}
