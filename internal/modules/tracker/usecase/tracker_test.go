package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	trackerout "sleepmaster/internal/modules/tracker/adapter/out"
	"sleepmaster/internal/modules/tracker/domain"
	"sleepmaster/internal/modules/tracker/service"
	"sleepmaster/internal/modules/tracker/usecase"
	apperrors "sleepmaster/internal/platform/errors"
	"sleepmaster/internal/platform/kv"
)

type fakeClock struct {
	values []time.Time
	idx    int
}

func (f *fakeClock) Now() time.Time {
	if f.idx >= len(f.values) {
		return f.values[len(f.values)-1]
	}
	v := f.values[f.idx]
	f.idx++
	return v
}

type fakeID struct{}

func (fakeID) New() string { return "session_1" }

type fakeRandom struct{ value int }

func (f fakeRandom) IntN(int) int { return f.value }

type failingHistoryStore struct{}

func (failingHistoryStore) Load(context.Context) ([]domain.CompletedSession, error) {
	return []domain.CompletedSession{}, nil
}

func (failingHistoryStore) Save(context.Context, []domain.CompletedSession) error {
	return errors.New("disk full")
}

func (failingHistoryStore) Append(context.Context, domain.CompletedSession) error {
	return errors.New("disk full")
}

func TestFullLifecycle(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), // open
		time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),  // close; later calls repeat this
	}}
	currentStore := trackerout.NewKVCurrentSessionStore(store)
	historyStore := trackerout.NewKVHistoryStore(store, clk)
	uc := usecase.NewInteractor(service.NewTrackerService(clk, fakeID{}, fakeRandom{value: 1}), currentStore, historyStore, nil)

	start, err := uc.Start(context.Background())
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if start.SessionID != "session_1" {
		t.Fatalf("unexpected session id %q", start.SessionID)
	}

	state, err := uc.State(context.Background())
	if err != nil {
		t.Fatalf("state after start: %v", err)
	}
	if !state.Sleeping || state.Current.SessionID != "session_1" {
		t.Fatalf("expected sleeping state, got %+v", state)
	}

	stop, err := uc.Stop(context.Background())
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if !stop.Stopped {
		t.Fatalf("expected a session to be stopped")
	}
	s := stop.Session
	if s.DurationMin != 480 || s.DeepSleepMin != 120 || s.LightSleepMin != 312 {
		t.Fatalf("unexpected metrics %+v", s)
	}
	// fakeRandom returns 1 from IntN(3), so awakenings = 1+1.
	if s.Awakenings != 2 {
		t.Fatalf("expected 2 awakenings, got %d", s.Awakenings)
	}
	if s.Score != 90 {
		t.Fatalf("expected score 90, got %d", s.Score)
	}

	state, err = uc.State(context.Background())
	if err != nil {
		t.Fatalf("state after stop: %v", err)
	}
	if state.Sleeping {
		t.Fatalf("current slot must be cleared after stop")
	}
	if !state.HasLast || state.LastNight.ID != "session_1" {
		t.Fatalf("stopped session must become last night, got %+v", state)
	}

	history, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != "session_1" {
		t.Fatalf("expected one history entry, got %+v", history)
	}
}

func TestStopWithoutSessionIsNoOp(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		trackerout.NewKVCurrentSessionStore(store),
		trackerout.NewKVHistoryStore(store, clk),
		nil,
	)

	stop, err := uc.Stop(context.Background())
	if err != nil {
		t.Fatalf("stop with nothing open must not error: %v", err)
	}
	if stop.Stopped {
		t.Fatalf("nothing should have been stopped")
	}
	history, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("no-op stop must not touch history, got %+v", history)
	}
}

func TestDoubleStopSecondIsNoOp(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),
	}}
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		trackerout.NewKVCurrentSessionStore(store),
		trackerout.NewKVHistoryStore(store, clk),
		nil,
	)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	first, err := uc.Stop(context.Background())
	if err != nil || !first.Stopped {
		t.Fatalf("first stop: %+v %v", first, err)
	}
	second, err := uc.Stop(context.Background())
	if err != nil {
		t.Fatalf("second stop must not error: %v", err)
	}
	if second.Stopped {
		t.Fatalf("second stop must be a no-op")
	}
	history, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("second stop must not grow history, got %d entries", len(history))
	}
}

func TestStartWhileOpenIsRejected(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		trackerout.NewKVCurrentSessionStore(store),
		trackerout.NewKVHistoryStore(store, clk),
		nil,
	)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("first start: %v", err)
	}
	if _, err := uc.Start(context.Background()); !errors.Is(err, apperrors.ErrSessionAlreadyActive) {
		t.Fatalf("expected ErrSessionAlreadyActive, got %v", err)
	}
}

func TestStopKeepsSessionOpenWhenAppendFails(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),
	}}
	currentStore := trackerout.NewKVCurrentSessionStore(store)
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		currentStore,
		failingHistoryStore{},
		nil,
	)

	if _, err := uc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := uc.Stop(context.Background()); err == nil {
		t.Fatalf("stop must fail when the history append fails")
	}
	open, err := currentStore.Load(context.Background())
	if err != nil {
		t.Fatalf("current session must survive a failed stop: %v", err)
	}
	if open.ID != "session_1" {
		t.Fatalf("unexpected surviving session %+v", open)
	}
}

func TestToggleComposesStartAndStop(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{
		time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), // open
		time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC),  // close
	}}
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		trackerout.NewKVCurrentSessionStore(store),
		trackerout.NewKVHistoryStore(store, clk),
		nil,
	)

	first, err := uc.Toggle(context.Background())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !first.Started {
		t.Fatalf("first toggle must start, got %+v", first)
	}
	second, err := uc.Toggle(context.Background())
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if second.Started || !second.Stop.Stopped {
		t.Fatalf("second toggle must stop, got %+v", second)
	}
}

func TestStateOnFreshInstall(t *testing.T) {
	t.Parallel()
	store := kv.NewFileStore(t.TempDir())
	clk := &fakeClock{values: []time.Time{time.Date(2026, 8, 31, 7, 0, 0, 0, time.UTC)}}
	uc := usecase.NewInteractor(
		service.NewTrackerService(clk, fakeID{}, fakeRandom{}),
		trackerout.NewKVCurrentSessionStore(store),
		trackerout.NewKVHistoryStore(store, clk),
		nil,
	)

	state, err := uc.State(context.Background())
	if err != nil {
		t.Fatalf("state on fresh install: %v", err)
	}
	if state.Sleeping || state.HasLast {
		t.Fatalf("fresh install must report nothing, got %+v", state)
	}
}
