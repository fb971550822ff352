package usecase

import (
	"context"
	"errors"

	"sleepmaster/internal/modules/tracker/domain"
	"sleepmaster/internal/modules/tracker/dto"
	trackerin "sleepmaster/internal/modules/tracker/port/in"
	trackerout "sleepmaster/internal/modules/tracker/port/out"
	"sleepmaster/internal/modules/tracker/service"
	apperrors "sleepmaster/internal/platform/errors"
)

type Interactor struct {
	svc          *service.TrackerService
	currentStore trackerout.CurrentSessionStore
	historyStore trackerout.HistoryStore
	projector    trackerout.HistoryProjector
}

func NewInteractor(svc *service.TrackerService, currentStore trackerout.CurrentSessionStore, historyStore trackerout.HistoryStore, projector trackerout.HistoryProjector) trackerin.Usecase {
	return &Interactor{svc: svc, currentStore: currentStore, historyStore: historyStore, projector: projector}
}

// Start opens a new session. A second start while one is open is rejected
// rather than silently replacing the slot and losing the original start time.
func (i *Interactor) Start(ctx context.Context) (dto.StartOutput, error) {
	_, err := i.currentStore.Load(ctx)
	if err == nil {
		return dto.StartOutput{}, apperrors.ErrSessionAlreadyActive
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StartOutput{}, err
	}

	open := i.svc.Open()
	if err := i.currentStore.Save(ctx, open); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{SessionID: open.ID, StartedAt: open.StartedAt}, nil
}

// Stop closes the open session and moves it to history. With nothing open it
// is a benign no-op. The history append happens before the slot is cleared:
// if the append fails the session stays open and persisted, and the caller
// sees the error.
func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	open, err := i.currentStore.Load(ctx)
	if errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StopOutput{}, nil
	}
	if err != nil {
		return dto.StopOutput{}, err
	}

	completed := i.svc.Close(open)
	if err := i.historyStore.Append(ctx, completed); err != nil {
		return dto.StopOutput{}, err
	}
	if err := i.currentStore.Clear(ctx); err != nil {
		return dto.StopOutput{}, err
	}
	if i.projector != nil {
		// The projection is a derived index; the close already succeeded.
		_ = i.projector.Upsert(ctx, completed)
	}
	return dto.StopOutput{Stopped: true, Session: toSessionOutput(completed)}, nil
}

func (i *Interactor) Toggle(ctx context.Context) (dto.ToggleOutput, error) {
	_, err := i.currentStore.Load(ctx)
	if err == nil {
		stop, err := i.Stop(ctx)
		if err != nil {
			return dto.ToggleOutput{}, err
		}
		return dto.ToggleOutput{Stop: stop}, nil
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.ToggleOutput{}, err
	}
	start, err := i.Start(ctx)
	if err != nil {
		return dto.ToggleOutput{}, err
	}
	return dto.ToggleOutput{Started: true, Start: start}, nil
}

// State reports the current slot plus the most recent completed session, the
// two things a front end needs on load. Both tolerate a fresh install.
func (i *Interactor) State(ctx context.Context) (dto.StateOutput, error) {
	out := dto.StateOutput{}

	open, err := i.currentStore.Load(ctx)
	if err == nil {
		out.Sleeping = true
		out.Current = dto.StartOutput{SessionID: open.ID, StartedAt: open.StartedAt}
	} else if !errors.Is(err, apperrors.ErrNoActiveSession) {
		return dto.StateOutput{}, err
	}

	history, err := i.historyStore.Load(ctx)
	if err != nil {
		return dto.StateOutput{}, err
	}
	for _, s := range history {
		if !s.EndedAt.IsZero() {
			out.HasLast = true
			out.LastNight = toSessionOutput(s)
			break
		}
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context) ([]dto.SessionOutput, error) {
	history, err := i.historyStore.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(history))
	for _, s := range history {
		out = append(out, toSessionOutput(s))
	}
	return out, nil
}

func toSessionOutput(s domain.CompletedSession) dto.SessionOutput {
	return dto.SessionOutput{
		ID:            s.ID,
		StartedAt:     s.StartedAt,
		EndedAt:       s.EndedAt,
		DurationMin:   s.DurationMin,
		DeepSleepMin:  s.DeepSleepMin,
		LightSleepMin: s.LightSleepMin,
		AwakeMin:      s.AwakeMin(),
		Awakenings:    s.Awakenings,
		Score:         s.Score,
	}
}
