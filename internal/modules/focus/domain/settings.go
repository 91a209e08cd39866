package domain

// Settings are the user preferences the launcher shell reads. Only
// BreakGlassPhrase feeds back into enforcement; the rest are display and
// scheduling hints for the shell.
type Settings struct {
	SchemaVersion        int    `json:"schema_version"`
	GrayscaleEnabled     bool   `json:"grayscale_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	EveningCheckInTime   string `json:"evening_check_in_time"`
	MorningPromptTime    string `json:"morning_prompt_time"`
	BreakGlassPhrase     string `json:"break_glass_phrase"`
	VibrationEnabled     bool   `json:"vibration_enabled"`
}

func DefaultSettings() Settings {
	return Settings{
		SchemaVersion:        SchemaVersion,
		NotificationsEnabled: true,
		EveningCheckInTime:   "21:00",
		MorningPromptTime:    "08:00",
		BreakGlassPhrase:     "I need my phone",
		VibrationEnabled:     true,
	}
}
