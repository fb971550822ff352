package in

import (
	"context"

	"sleepmaster/internal/modules/tracker/dto"
	trackerin "sleepmaster/internal/modules/tracker/port/in"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (dto.StartOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (dto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Toggle(ctx context.Context) (dto.ToggleOutput, error) {
	return h.usecase.Toggle(ctx)
}

func (h CLIHandler) State(ctx context.Context) (dto.StateOutput, error) {
	return h.usecase.State(ctx)
}

func (h CLIHandler) History(ctx context.Context) ([]dto.SessionOutput, error) {
	return h.usecase.History(ctx)
}
