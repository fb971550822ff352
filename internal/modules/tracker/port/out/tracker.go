package out

import (
	"context"

	"sleepmaster/internal/modules/tracker/domain"
)

// CurrentSessionStore holds the at-most-one open session. Load returns
// apperrors.ErrNoActiveSession when the slot is empty or its payload cannot
// be decoded; losing a corrupt in-progress session is acceptable, crashing
// the reader is not.
type CurrentSessionStore interface {
	Save(ctx context.Context, session domain.OpenSession) error
	Load(ctx context.Context) (domain.OpenSession, error)
	Clear(ctx context.Context) error
}

// HistoryStore keeps the ordered collection of completed sessions, newest
// first. Load returns an empty slice when the record is absent or
// undecodable. Append prepends and re-applies the retention filter.
type HistoryStore interface {
	Load(ctx context.Context) ([]domain.CompletedSession, error)
	Save(ctx context.Context, sessions []domain.CompletedSession) error
	Append(ctx context.Context, session domain.CompletedSession) error
}

// HistoryProjector mirrors completed sessions into a queryable index. The
// history record stays the source of truth; projection failures must not
// fail the close transition.
type HistoryProjector interface {
	Upsert(ctx context.Context, session domain.CompletedSession) error
}
