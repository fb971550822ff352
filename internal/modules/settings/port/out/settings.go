package out

import (
	"context"

	"sleepmaster/internal/modules/settings/domain"
)

// SettingsStore persists the settings record. Load falls back to defaults
// when the record is absent or undecodable.
type SettingsStore interface {
	Load(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, settings domain.Settings) error
}
