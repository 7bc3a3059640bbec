package habit

import (
	"time"

	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

// NormalizeWindows rolls the habit's day and week windows forward to
// "now". The completed-today flag only survives within the calendar day
// it was set, and the weekly counter resets when the Monday-based week
// changes. Streaks are not touched here: a missed day is an explicit
// event handled by ResetDay.
func NormalizeWindows(h *Habit, now time.Time) {
	today := util.NewDateOnly(now)

	if h.CompletedToday && (h.LastCompletedOn == nil || !h.LastCompletedOn.Equal(today)) {
		h.CompletedToday = false
	}

	weekStart := today.StartOfWeek()
	if h.WeekStart == nil || !h.WeekStart.Equal(weekStart) {
		h.CurrentWeekCompleted = 0
		h.WeekStart = &weekStart
	}
}

// ApplyToggle flips the habit's completed-today state and keeps the
// streak and weekly bookkeeping consistent.
//
// The undo path is fully symmetric: toggling off the same day
// decrements the streak and weekly counter, floored at zero. BestStreak
// is a high-water mark and is never decremented. Toggling to the state
// the habit is already in is a no-op.
func ApplyToggle(h *Habit, completed bool, now time.Time) {
	NormalizeWindows(h, now)

	if completed == h.CompletedToday {
		return
	}

	if completed {
		h.Streak++
		if h.Streak > h.BestStreak {
			h.BestStreak = h.Streak
		}
		h.CurrentWeekCompleted++
		h.CompletedToday = true
		today := util.NewDateOnly(now)
		h.LastCompletedOn = &today
	} else {
		if h.Streak > 0 {
			h.Streak--
		}
		if h.CurrentWeekCompleted > 0 {
			h.CurrentWeekCompleted--
		}
		h.CompletedToday = false
		// Roll the completion date back too, or the revoked completion
		// would still satisfy the missed-day chain check tomorrow. A
		// surviving streak means the previous completion was yesterday.
		if h.Streak > 0 {
			yesterday := util.NewDateOnly(now.AddDate(0, 0, -1))
			h.LastCompletedOn = &yesterday
		} else {
			h.LastCompletedOn = nil
		}
	}

	markEstablished(h, now)
}

// ApplyMissedDay resets the streak of a habit whose most recent
// completion is older than yesterday, i.e. the consecutive chain is
// broken. Called from the external day-reset operation, never from the
// toggle path. The established marker, if already set, survives the
// reset.
func ApplyMissedDay(h *Habit, now time.Time) {
	NormalizeWindows(h, now)

	today := util.NewDateOnly(now)
	yesterday := util.NewDateOnly(now.AddDate(0, 0, -1))
	if h.LastCompletedOn == nil ||
		(!h.LastCompletedOn.Equal(today) && !h.LastCompletedOn.Equal(yesterday)) {
		h.Streak = 0
	}
}

func markEstablished(h *Habit, now time.Time) {
	if h.EstablishedAt == nil && h.TargetDuration > 0 && h.Streak >= h.TargetDuration {
		t := now
		h.EstablishedAt = &t
	}
}
