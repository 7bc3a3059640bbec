package habit

import "math"

// StrengthResult is the habit strength score with its display label.
type StrengthResult struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// Strength weights. The raw weights sum to 1.20; the final score is
// clamped to [0,100] rather than the weights being normalized.
// Normalizing would shift every observable score, so both sides stay
// as they are.
const (
	weightCompletionRate = 0.40
	weightStreak         = 0.25
	weightTiming         = 0.15
	weightToday          = 0.20
	weightWeek           = 0.20

	// streakHorizonDays is the streak length at which the streak factor
	// saturates.
	streakHorizonDays = 30
)

// Strength computes the 0-100 habit strength from five weighted
// factors: weekly completion rate, streak (capped at 30 days), presence
// of a scheduled reminder time, same-day completion, and weekly
// progress ratio.
func Strength(h *Habit) StrengthResult {
	completion := h.CompletionRate()
	streakScore := math.Min(float64(h.Streak)/streakHorizonDays*100, 100)

	var timingScore, todayScore float64
	if h.HasReminderTime() {
		timingScore = 100
	}
	if h.CompletedToday {
		todayScore = 100
	}
	weekScore := math.Min(h.CompletionRate(), 100)

	raw := completion*weightCompletionRate +
		streakScore*weightStreak +
		timingScore*weightTiming +
		todayScore*weightToday +
		weekScore*weightWeek

	score := int(math.Round(raw))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return StrengthResult{Score: score, Label: strengthLabel(score)}
}

func strengthLabel(score int) string {
	switch {
	case score >= 90:
		return "Identity"
	case score >= 75:
		return "Automatic"
	case score >= 50:
		return "Established"
	case score >= 25:
		return "Rooted"
	default:
		return "Seed"
	}
}
