// Package insights produces the "AI" surface of the app: motivational
// messages and reminder-schedule suggestions. Everything here is
// locally generated from canned pools and simple rules; no model is
// ever called.
package insights

import "context"

type MotivationInput struct {
	Title          string
	Streak         int
	BestStreak     int
	CompletionRate float64
	CompletedToday bool
}

type ScheduleInput struct {
	Title     string
	IsBad     bool
	TimeOfDay []string
}

type ScheduleSuggestion struct {
	Time      string `json:"time"` // "HH:MM"
	Frequency string `json:"frequency"`
	Reason    string `json:"reason"`
}

// Provider generates insight content. The interface exists so the
// delivery layer does not care how messages are produced.
type Provider interface {
	MotivationalMessage(ctx context.Context, in MotivationInput) (string, error)
	SuggestSchedule(ctx context.Context, in ScheduleInput) (*ScheduleSuggestion, error)
}
