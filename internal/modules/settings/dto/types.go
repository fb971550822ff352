package dto

type SettingsOutput struct {
	Bedtime   string
	WakeTime  string
	GoalHours int
}

type UpdateInput struct {
	// Empty string / zero leaves the field unchanged.
	Bedtime   string
	WakeTime  string
	GoalHours int
}
