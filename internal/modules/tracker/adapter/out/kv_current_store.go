package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sleepmaster/internal/modules/tracker/domain"
	trackerout "sleepmaster/internal/modules/tracker/port/out"
	apperrors "sleepmaster/internal/platform/errors"
	"sleepmaster/internal/platform/kv"
)

const currentSessionKey = "current_session"

// KVCurrentSessionStore persists the open-session slot as a single JSON
// record. A payload that fails to decode is treated the same as an absent
// one; the open session is the only record it is acceptable to lose.
type KVCurrentSessionStore struct {
	store kv.Store
}

func NewKVCurrentSessionStore(store kv.Store) trackerout.CurrentSessionStore {
	return &KVCurrentSessionStore{store: store}
}

func (s *KVCurrentSessionStore) Save(ctx context.Context, session domain.OpenSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal current session: %w", err)
	}
	if err := s.store.Set(ctx, currentSessionKey, payload); err != nil {
		return fmt.Errorf("save current session: %w", err)
	}
	return nil
}

func (s *KVCurrentSessionStore) Load(ctx context.Context) (domain.OpenSession, error) {
	payload, err := s.store.Get(ctx, currentSessionKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return domain.OpenSession{}, apperrors.ErrNoActiveSession
		}
		return domain.OpenSession{}, fmt.Errorf("load current session: %w", err)
	}
	open := domain.OpenSession{}
	if err := json.Unmarshal(payload, &open); err != nil {
		return domain.OpenSession{}, apperrors.ErrNoActiveSession
	}
	if open.ID == "" {
		return domain.OpenSession{}, apperrors.ErrNoActiveSession
	}
	return open, nil
}

func (s *KVCurrentSessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, currentSessionKey); err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}
