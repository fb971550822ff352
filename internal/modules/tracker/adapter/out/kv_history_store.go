package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sleepmaster/internal/modules/tracker/domain"
	trackerout "sleepmaster/internal/modules/tracker/port/out"
	"sleepmaster/internal/platform/clock"
	"sleepmaster/internal/platform/kv"
)

const sleepHistoryKey = "sleep_history"

// KVHistoryStore keeps the ordered history record, newest first. The clock is
// injected because Append recomputes the retention cutoff on every write.
type KVHistoryStore struct {
	store kv.Store
	clock clock.Clock
}

func NewKVHistoryStore(store kv.Store, clock clock.Clock) trackerout.HistoryStore {
	return &KVHistoryStore{store: store, clock: clock}
}

func (s *KVHistoryStore) Load(ctx context.Context) ([]domain.CompletedSession, error) {
	payload, err := s.store.Get(ctx, sleepHistoryKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return []domain.CompletedSession{}, nil
		}
		return nil, fmt.Errorf("load sleep history: %w", err)
	}
	var history []domain.CompletedSession
	if err := json.Unmarshal(payload, &history); err != nil {
		return []domain.CompletedSession{}, nil
	}
	return history, nil
}

func (s *KVHistoryStore) Save(ctx context.Context, sessions []domain.CompletedSession) error {
	payload, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sleep history: %w", err)
	}
	if err := s.store.Set(ctx, sleepHistoryKey, payload); err != nil {
		return fmt.Errorf("save sleep history: %w", err)
	}
	return nil
}

// Append prepends the session and re-applies the retention window. This is a
// read-modify-write with no locking, safe only because a single local client
// writes the record.
func (s *KVHistoryStore) Append(ctx context.Context, session domain.CompletedSession) error {
	history, err := s.Load(ctx)
	if err != nil {
		return err
	}
	history = append([]domain.CompletedSession{session}, history...)
	cutoff := domain.RetentionCutoff(s.clock.Now())
	return s.Save(ctx, domain.FilterRetained(history, cutoff))
}
