package in

import (
	"context"

	"sleepmaster/internal/modules/tracker/dto"
)

type Usecase interface {
	Start(ctx context.Context) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Toggle(ctx context.Context) (dto.ToggleOutput, error)
	State(ctx context.Context) (dto.StateOutput, error)
	History(ctx context.Context) ([]dto.SessionOutput, error)
}
