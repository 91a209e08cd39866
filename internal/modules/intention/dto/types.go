package dto

import "time"

type IntentionOutput struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Text        string     `json:"text"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type DeclareInput struct {
	Text string `json:"text"`
}

type CheckInInput struct {
	Status string `json:"status"`
}

type CheckInOutput struct {
	Updated   bool            `json:"updated"`
	Intention IntentionOutput `json:"intention,omitempty"`
	Streak    int             `json:"streak"`
}

type TodayOutput struct {
	Declared  bool            `json:"declared"`
	Intention IntentionOutput `json:"intention,omitempty"`
}

type StreakOutput struct {
	Days int `json:"days"`
}

type StatsOutput struct {
	Total          int     `json:"total"`
	Complete       int     `json:"complete"`
	Partial        int     `json:"partial"`
	Missed         int     `json:"missed"`
	InProgress     int     `json:"in_progress"`
	CompletionRate float64 `json:"completion_rate"`
}
