package service

import (
	"sleepmaster/internal/modules/tracker/domain"
	"sleepmaster/internal/platform/clock"
	"sleepmaster/internal/platform/id"
	"sleepmaster/internal/platform/random"
)

const (
	minAwakenings = 1
	maxAwakenings = 3
)

// TrackerService owns the open/close transitions. Time, identifiers and
// randomness are injected so closes are deterministic under test.
type TrackerService struct {
	clock clock.Clock
	idGen id.Generator
	rng   random.Source
}

func NewTrackerService(clock clock.Clock, idGen id.Generator, rng random.Source) *TrackerService {
	return &TrackerService{clock: clock, idGen: idGen, rng: rng}
}

func (s *TrackerService) Open() domain.OpenSession {
	return domain.OpenSession{
		ID:        s.idGen.New(),
		StartedAt: s.clock.Now(),
	}
}

func (s *TrackerService) Close(open domain.OpenSession) domain.CompletedSession {
	awakenings := minAwakenings + s.rng.IntN(maxAwakenings-minAwakenings+1)
	return domain.Complete(open, s.clock.Now(), awakenings)
}
