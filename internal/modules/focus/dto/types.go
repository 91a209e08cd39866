package dto

type ModeOutput struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	AllowedApps     []string `json:"allowed_apps"`
	EnableGrayscale bool     `json:"enable_grayscale"`
	IsCustom        bool     `json:"is_custom"`
	IsActive        bool     `json:"is_active"`
}

type InitOutput struct {
	Seeded bool `json:"seeded"`
	Modes  int  `json:"modes"`
}

type ActivateInput struct {
	ModeID string `json:"mode_id"`
}

type ActivateOutput struct {
	ModeID           string   `json:"mode_id"`
	Name             string   `json:"name"`
	BlockedApps      []string `json:"blocked_apps"`
	GrayscaleEnabled bool     `json:"grayscale_enabled"`
}

type DeactivateOutput struct {
	WasActive         bool   `json:"was_active"`
	ModeID            string `json:"mode_id,omitempty"`
	GrayscaleDisabled bool   `json:"grayscale_disabled"`
}

type CreateModeInput struct {
	Name        string   `json:"name"`
	AllowedApps []string `json:"allowed_apps"`
}

type StatusOutput struct {
	ActiveModeID      string   `json:"active_mode_id,omitempty"`
	ActiveModeName    string   `json:"active_mode_name,omitempty"`
	GrayscaleEnabled  bool     `json:"grayscale_enabled"`
	PermissionGranted bool     `json:"permission_granted"`
	BlockedApps       []string `json:"blocked_apps"`
	Repair            string   `json:"repair,omitempty"`
}

type ReconcileOutput struct {
	Consistent bool   `json:"consistent"`
	Repair     string `json:"repair,omitempty"`
}

type SettingsOutput struct {
	GrayscaleEnabled     bool   `json:"grayscale_enabled"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	EveningCheckInTime   string `json:"evening_check_in_time"`
	MorningPromptTime    string `json:"morning_prompt_time"`
	BreakGlassPhrase     string `json:"break_glass_phrase"`
	VibrationEnabled     bool   `json:"vibration_enabled"`
}

type UpdateSettingsInput struct {
	NotificationsEnabled *bool   `json:"notifications_enabled,omitempty"`
	EveningCheckInTime   *string `json:"evening_check_in_time,omitempty"`
	MorningPromptTime    *string `json:"morning_prompt_time,omitempty"`
	BreakGlassPhrase     *string `json:"break_glass_phrase,omitempty"`
	VibrationEnabled     *bool   `json:"vibration_enabled,omitempty"`
}
