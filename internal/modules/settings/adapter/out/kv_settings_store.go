package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"sleepmaster/internal/modules/settings/domain"
	settingsout "sleepmaster/internal/modules/settings/port/out"
	"sleepmaster/internal/platform/kv"
)

const settingsKey = "settings"

// KVSettingsStore persists settings as one JSON record. Defaults are the
// fallback for both an absent record and a corrupt one; defaults come from
// the wiring so a config file can override them.
type KVSettingsStore struct {
	store    kv.Store
	defaults domain.Settings
}

func NewKVSettingsStore(store kv.Store, defaults domain.Settings) settingsout.SettingsStore {
	if !defaults.Valid() {
		defaults = domain.Default()
	}
	return &KVSettingsStore{store: store, defaults: defaults}
}

func (s *KVSettingsStore) Load(ctx context.Context) (domain.Settings, error) {
	payload, err := s.store.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return s.defaults, nil
		}
		return domain.Settings{}, fmt.Errorf("load settings: %w", err)
	}
	settings := domain.Settings{}
	if err := json.Unmarshal(payload, &settings); err != nil {
		return s.defaults, nil
	}
	if !settings.Valid() {
		return s.defaults, nil
	}
	return settings, nil
}

func (s *KVSettingsStore) Save(ctx context.Context, settings domain.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.store.Set(ctx, settingsKey, payload); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
