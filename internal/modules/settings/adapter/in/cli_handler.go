package in

import (
	"context"

	"sleepmaster/internal/modules/settings/dto"
	settingsin "sleepmaster/internal/modules/settings/port/in"
)

type CLIHandler struct {
	usecase settingsin.Usecase
}

func NewCLIHandler(usecase settingsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Get(ctx context.Context) (dto.SettingsOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Update(ctx context.Context, bedtime, wakeTime string, goalHours int) (dto.SettingsOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{Bedtime: bedtime, WakeTime: wakeTime, GoalHours: goalHours})
}
