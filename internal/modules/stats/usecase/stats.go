package usecase

import (
	"context"
	"fmt"

	"sleepmaster/internal/modules/stats/domain"
	"sleepmaster/internal/modules/stats/dto"
	statsin "sleepmaster/internal/modules/stats/port/in"
	statsout "sleepmaster/internal/modules/stats/port/out"
	apperrors "sleepmaster/internal/platform/errors"
	"sleepmaster/internal/platform/clock"
)

const defaultWindowDays = 30

type Interactor struct {
	clock clock.Clock
	index statsout.SessionIndex
}

func NewInteractor(clock clock.Clock, index statsout.SessionIndex) statsin.Usecase {
	return &Interactor{clock: clock, index: index}
}

func (i *Interactor) Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error) {
	days := input.Days
	if days == 0 {
		days = defaultWindowDays
	}
	if days < 0 {
		return dto.SummaryOutput{}, fmt.Errorf("%w: days must be positive", apperrors.ErrInvalidInput)
	}
	since := i.clock.Now().AddDate(0, 0, -days)
	nights, err := i.index.NightsSince(ctx, since)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	summary := domain.Summarize(days, nights)
	return dto.SummaryOutput{
		Days:           summary.Days,
		Nights:         summary.Nights,
		TotalSleepMin:  summary.TotalSleepMin,
		AvgDurationMin: summary.AvgDurationMin,
		AvgScore:       summary.AvgScore,
		BestScore:      summary.BestScore,
		AvgAwakenings:  summary.AvgAwakenings,
	}, nil
}
