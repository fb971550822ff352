package domain_test

import (
	"testing"
	"time"

	"sleepmaster/internal/modules/tracker/domain"
)

func TestScoreBands(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name                            string
		duration, deepSleep, awakenings int
		want                            int
	}{
		{"perfect night", 480, 120, 0, 100},
		{"eight hours one awakening", 480, 120, 1, 95},
		{"six hours duration only", 360, 0, -1, 30},
		{"exactly seven hours", 420, 0, -1, 40},
		{"exactly nine hours", 540, 0, -1, 40},
		{"just over nine hours", 541, 0, -1, 10},
		{"ten hours oversleep", 600, 0, -1, 10},
		{"five hour band", 330, 0, -1, 20},
		{"short night", 240, 0, -1, 10},
		{"zero duration", 0, 0, -1, 10},
		{"no duration recorded", -1, 0, -1, 0},
		{"low deep sleep proportion", 480, 48, -1, 50},
		{"mid deep sleep proportion", 480, 80, -1, 60},
		{"excess deep sleep proportion", 480, 150, -1, 50},
		{"many awakenings", 480, 120, 5, 75},
		{"four awakenings", 480, 120, 4, 80},
		{"cap at one hundred", 480, 110, 0, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.Score(tc.duration, tc.deepSleep, tc.awakenings); got != tc.want {
				t.Fatalf("Score(%d, %d, %d) = %d, want %d", tc.duration, tc.deepSleep, tc.awakenings, got, tc.want)
			}
		})
	}
}

func TestCompleteSetsAllDerivedFields(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	open := domain.OpenSession{ID: "session_1", StartedAt: start}

	completed := domain.Complete(open, start.Add(8*time.Hour), 2)

	if completed.ID != "session_1" || !completed.StartedAt.Equal(start) {
		t.Fatalf("identity fields must carry over, got %+v", completed)
	}
	if completed.DurationMin != 480 {
		t.Fatalf("expected 480 minutes, got %d", completed.DurationMin)
	}
	if completed.DeepSleepMin != 120 || completed.LightSleepMin != 312 {
		t.Fatalf("expected stage split 120/312, got %d/%d", completed.DeepSleepMin, completed.LightSleepMin)
	}
	if completed.Awakenings != 2 {
		t.Fatalf("expected 2 awakenings, got %d", completed.Awakenings)
	}
	if completed.Score != 90 {
		t.Fatalf("expected score 90 (40+30+20), got %d", completed.Score)
	}
	if completed.AwakeMin() != 48 {
		t.Fatalf("expected 48 awake minutes, got %d", completed.AwakeMin())
	}
}

func TestCompleteImmediateStop(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	completed := domain.Complete(domain.OpenSession{ID: "s", StartedAt: start}, start, 1)
	if completed.DurationMin != 0 || completed.DeepSleepMin != 0 || completed.LightSleepMin != 0 {
		t.Fatalf("immediate stop must yield zero metrics, got %+v", completed)
	}
	if completed.EndedAt.IsZero() {
		t.Fatalf("end time must be set")
	}
	// 10 for the short-duration band plus 25 for a single awakening.
	if completed.Score != 35 {
		t.Fatalf("expected score 35, got %d", completed.Score)
	}
}

func TestCompleteClampsClockSkew(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	completed := domain.Complete(domain.OpenSession{ID: "s", StartedAt: start}, start.Add(-time.Hour), 1)
	if completed.DurationMin != 0 {
		t.Fatalf("negative interval must clamp to 0, got %d", completed.DurationMin)
	}
}

func TestCompleteFloorsPartialMinutes(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	completed := domain.Complete(domain.OpenSession{ID: "s", StartedAt: start}, start.Add(7*time.Hour+30*time.Minute+59*time.Second), 1)
	if completed.DurationMin != 450 {
		t.Fatalf("duration must truncate, got %d", completed.DurationMin)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{450, "7h 30m"},
		{-30, "0h 0m"},
	}
	for _, tc := range cases {
		if got := domain.FormatDuration(tc.minutes); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestFilterRetained(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	cutoff := domain.RetentionCutoff(now)

	recent := domain.CompletedSession{ID: "recent", StartedAt: now.AddDate(0, 0, -89)}
	stale := domain.CompletedSession{ID: "stale", StartedAt: now.AddDate(0, 0, -91)}

	kept := domain.FilterRetained([]domain.CompletedSession{recent, stale}, cutoff)
	if len(kept) != 1 || kept[0].ID != "recent" {
		t.Fatalf("expected only the recent session kept, got %+v", kept)
	}
}
