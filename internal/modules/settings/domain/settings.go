package domain

// Settings are the user's sleep schedule preferences.
type Settings struct {
	Bedtime   string `json:"bedtime"`
	WakeTime  string `json:"wake_time"`
	GoalHours int    `json:"goal_hours"`
}

func Default() Settings {
	return Settings{
		Bedtime:   "11:00 PM",
		WakeTime:  "7:00 AM",
		GoalHours: 8,
	}
}

func (s Settings) Valid() bool {
	return s.Bedtime != "" && s.WakeTime != "" && s.GoalHours > 0 && s.GoalHours <= 24
}
