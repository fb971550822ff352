package domain

import (
	"fmt"
	"time"
)

const SchemaVersion = 1

// RetentionDays bounds how far back history is kept.
const RetentionDays = 90

// Synthesized stage split: without sensor data, deep and light sleep are
// fixed fractions of the total duration. The remainder counts as awake time.
const (
	deepSleepFraction  = 0.25
	lightSleepFraction = 0.65
)

// OpenSession is a sleep interval still in progress. Only identity and the
// start instant exist; every derived metric belongs to CompletedSession so
// that closing is a single all-or-nothing transition.
type OpenSession struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
}

// CompletedSession is a closed sleep interval with all derived metrics set.
type CompletedSession struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	DurationMin   int       `json:"duration_min"`
	DeepSleepMin  int       `json:"deep_sleep_min"`
	LightSleepMin int       `json:"light_sleep_min"`
	Awakenings    int       `json:"awakenings"`
	Score         int       `json:"score"`
	Notes         string    `json:"notes,omitempty"`
}

// Complete closes an open session at endedAt. The duration is floored to
// whole minutes and clamped at zero so a skewed clock can never produce a
// negative interval.
func Complete(open OpenSession, endedAt time.Time, awakenings int) CompletedSession {
	duration := int(endedAt.Sub(open.StartedAt).Minutes())
	if duration < 0 {
		duration = 0
	}
	deep := int(float64(duration) * deepSleepFraction)
	light := int(float64(duration) * lightSleepFraction)
	return CompletedSession{
		ID:            open.ID,
		StartedAt:     open.StartedAt,
		EndedAt:       endedAt,
		DurationMin:   duration,
		DeepSleepMin:  deep,
		LightSleepMin: light,
		Awakenings:    awakenings,
		Score:         Score(duration, deep, awakenings),
	}
}

// Score rates a night 0-100. The duration band is mandatory; deep-sleep
// proportion and awakening count add bonuses on top, capped at 100. A
// negative durationMin means no duration was recorded and scores 0. A zero
// deepSleepMin or negative awakenings skips that bonus.
func Score(durationMin, deepSleepMin, awakenings int) int {
	if durationMin < 0 {
		return 0
	}

	score := 0

	hours := float64(durationMin) / 60
	switch {
	case hours >= 7 && hours <= 9:
		score += 40
	case hours >= 6 && hours < 7:
		score += 30
	case hours >= 5 && hours < 6:
		score += 20
	default:
		score += 10
	}

	if deepSleepMin > 0 {
		pct := float64(deepSleepMin) / float64(durationMin) * 100
		switch {
		case pct >= 20 && pct <= 25:
			score += 30
		case pct >= 15 && pct < 20:
			score += 20
		default:
			score += 10
		}
	}

	switch {
	case awakenings < 0:
		// unrecorded, no bonus
	case awakenings == 0:
		score += 30
	case awakenings == 1:
		score += 25
	case awakenings == 2:
		score += 20
	case awakenings <= 4:
		score += 10
	default:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}

// AwakeMin is the part of the night not attributed to a sleep stage.
func (s CompletedSession) AwakeMin() int {
	awake := s.DurationMin - s.DeepSleepMin - s.LightSleepMin
	if awake < 0 {
		return 0
	}
	return awake
}

// FormatDuration renders minutes as "7h 30m". Negative input renders as zero.
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// RetentionCutoff gives the oldest admissible start instant as of now.
func RetentionCutoff(now time.Time) time.Time {
	return now.AddDate(0, 0, -RetentionDays)
}

// FilterRetained keeps sessions whose start falls after the cutoff,
// preserving order.
func FilterRetained(sessions []CompletedSession, cutoff time.Time) []CompletedSession {
	kept := make([]CompletedSession, 0, len(sessions))
	for _, s := range sessions {
		if s.StartedAt.After(cutoff) {
			kept = append(kept, s)
		}
	}
	return kept
}
