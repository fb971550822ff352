package domain

import "time"

// Night is one completed session as seen by the stats index.
type Night struct {
	StartedAt   time.Time
	DurationMin int
	Awakenings  int
	Score       int
}

// Summary aggregates a trailing window of nights.
type Summary struct {
	Days           int
	Nights         int
	TotalSleepMin  int
	AvgDurationMin int
	AvgScore       int
	BestScore      int
	AvgAwakenings  float64
}

// Summarize reduces nights to a Summary. Averages round toward zero, same as
// the per-session metric arithmetic.
func Summarize(days int, nights []Night) Summary {
	s := Summary{Days: days, Nights: len(nights)}
	if len(nights) == 0 {
		return s
	}
	totalScore := 0
	totalAwakenings := 0
	for _, n := range nights {
		s.TotalSleepMin += n.DurationMin
		totalScore += n.Score
		totalAwakenings += n.Awakenings
		if n.Score > s.BestScore {
			s.BestScore = n.Score
		}
	}
	s.AvgDurationMin = s.TotalSleepMin / len(nights)
	s.AvgScore = totalScore / len(nights)
	s.AvgAwakenings = float64(totalAwakenings) / float64(len(nights))
	return s
}
