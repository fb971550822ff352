package usecase

import (
	"context"
	"fmt"

	"sleepmaster/internal/modules/settings/domain"
	"sleepmaster/internal/modules/settings/dto"
	settingsin "sleepmaster/internal/modules/settings/port/in"
	settingsout "sleepmaster/internal/modules/settings/port/out"
	apperrors "sleepmaster/internal/platform/errors"
)

type Interactor struct {
	store settingsout.SettingsStore
}

func NewInteractor(store settingsout.SettingsStore) settingsin.Usecase {
	return &Interactor{store: store}
}

func (i *Interactor) Get(ctx context.Context) (dto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.SettingsOutput, error) {
	settings, err := i.store.Load(ctx)
	if err != nil {
		return dto.SettingsOutput{}, err
	}
	if input.Bedtime != "" {
		settings.Bedtime = input.Bedtime
	}
	if input.WakeTime != "" {
		settings.WakeTime = input.WakeTime
	}
	if input.GoalHours != 0 {
		settings.GoalHours = input.GoalHours
	}
	if !settings.Valid() {
		return dto.SettingsOutput{}, fmt.Errorf("%w: goal hours must be within (0, 24]", apperrors.ErrInvalidInput)
	}
	if err := i.store.Save(ctx, settings); err != nil {
		return dto.SettingsOutput{}, err
	}
	return toOutput(settings), nil
}

func toOutput(s domain.Settings) dto.SettingsOutput {
	return dto.SettingsOutput{Bedtime: s.Bedtime, WakeTime: s.WakeTime, GoalHours: s.GoalHours}
}
