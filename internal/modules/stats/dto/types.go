package dto

type SummaryInput struct {
	Days int
}

type SummaryOutput struct {
	Days           int
	Nights         int
	TotalSleepMin  int
	AvgDurationMin int
	AvgScore       int
	BestScore      int
	AvgAwakenings  float64
}
