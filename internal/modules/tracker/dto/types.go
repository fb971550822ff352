package dto

import "time"

type StartOutput struct {
	SessionID string
	StartedAt time.Time
}

type StopOutput struct {
	// Stopped is false when there was nothing to stop; the call is then a
	// no-op and Session is zero.
	Stopped bool
	Session SessionOutput
}

type ToggleOutput struct {
	Started bool
	Start   StartOutput
	Stop    StopOutput
}

type SessionOutput struct {
	ID            string
	StartedAt     time.Time
	EndedAt       time.Time
	DurationMin   int
	DeepSleepMin  int
	LightSleepMin int
	AwakeMin      int
	Awakenings    int
	Score         int
}

type StateOutput struct {
	Sleeping  bool
	Current   StartOutput
	HasLast   bool
	LastNight SessionOutput
}
