package in

import (
	"context"

	"sleepmaster/internal/modules/stats/dto"
	statsin "sleepmaster/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, days int) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, dto.SummaryInput{Days: days})
}
