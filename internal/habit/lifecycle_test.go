package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

var lifecycleStart = time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) // a Monday

func TestApplyToggleSevenDayScenario(t *testing.T) {
	h := &Habit{
		Title:          "Meditate",
		Category:       CategoryMindfulness,
		TargetDuration: 7,
		WeeklyTarget:   7,
	}

	// Seven consecutive days of completion.
	for day := 0; day < 7; day++ {
		ApplyToggle(h, true, lifecycleStart.AddDate(0, 0, day))
	}

	assert.Equal(t, 7, h.Streak)
	assert.Equal(t, 7, h.BestStreak)
	assert.True(t, h.IsCompleted())
	require.NotNil(t, h.EstablishedAt)
}

func TestApplyToggleSymmetricUndo(t *testing.T) {
	h := &Habit{TargetDuration: 21, WeeklyTarget: 7}

	ApplyToggle(h, true, lifecycleStart)
	assert.Equal(t, 1, h.Streak)
	assert.Equal(t, 1, h.CurrentWeekCompleted)
	assert.True(t, h.CompletedToday)

	ApplyToggle(h, false, lifecycleStart)
	assert.Equal(t, 0, h.Streak)
	assert.Equal(t, 0, h.CurrentWeekCompleted)
	assert.False(t, h.CompletedToday)

	// BestStreak is a high-water mark and survives the undo.
	assert.Equal(t, 1, h.BestStreak)
}

func TestUndoRollsBackCompletionDate(t *testing.T) {
	h := &Habit{TargetDuration: 30, WeeklyTarget: 7}

	// Five-day streak, then day six completed and revoked the same day.
	for day := 0; day < 5; day++ {
		ApplyToggle(h, true, lifecycleStart.AddDate(0, 0, day))
	}
	day6 := lifecycleStart.AddDate(0, 0, 5)
	ApplyToggle(h, true, day6)
	ApplyToggle(h, false, day6)

	assert.Equal(t, 5, h.Streak)
	require.NotNil(t, h.LastCompletedOn)
	day5 := util.NewDateOnly(lifecycleStart.AddDate(0, 0, 4))
	assert.True(t, h.LastCompletedOn.Equal(day5), "undo must point the chain back at the previous completion")

	// Day seven: day six was genuinely missed, so the chain is broken.
	ApplyMissedDay(h, lifecycleStart.AddDate(0, 0, 6))
	assert.Equal(t, 0, h.Streak)

	// Undoing the only completion clears the date entirely.
	fresh := &Habit{TargetDuration: 30, WeeklyTarget: 7}
	ApplyToggle(fresh, true, lifecycleStart)
	ApplyToggle(fresh, false, lifecycleStart)
	assert.Nil(t, fresh.LastCompletedOn)
}

func TestApplyToggleIdempotent(t *testing.T) {
	h := &Habit{TargetDuration: 21, WeeklyTarget: 7}

	ApplyToggle(h, true, lifecycleStart)
	ApplyToggle(h, true, lifecycleStart)
	ApplyToggle(h, true, lifecycleStart)
	assert.Equal(t, 1, h.Streak, "re-toggling the same state must not double count")

	ApplyToggle(h, false, lifecycleStart)
	ApplyToggle(h, false, lifecycleStart)
	assert.Equal(t, 0, h.Streak)
}

func TestUndoFloorsAtZero(t *testing.T) {
	// Stale completed-today flag with no recorded completion date: the
	// window normalization clears it and the undo has nothing left to
	// decrement.
	h := &Habit{TargetDuration: 21, WeeklyTarget: 7, CompletedToday: true}

	ApplyToggle(h, false, lifecycleStart)
	assert.Equal(t, 0, h.Streak)
	assert.Equal(t, 0, h.CurrentWeekCompleted)
}

func TestEstablishedIsSticky(t *testing.T) {
	h := &Habit{TargetDuration: 3, WeeklyTarget: 7}

	for day := 0; day < 3; day++ {
		ApplyToggle(h, true, lifecycleStart.AddDate(0, 0, day))
	}
	require.True(t, h.IsCompleted())

	// A long gap breaks the streak via the missed-day event.
	later := lifecycleStart.AddDate(0, 0, 10)
	ApplyMissedDay(h, later)
	assert.Equal(t, 0, h.Streak)
	assert.True(t, h.IsCompleted(), "established state must survive a streak reset")
}

func TestApplyMissedDay(t *testing.T) {
	t.Run("CompletedYesterdayKeepsStreak", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7}
		ApplyToggle(h, true, lifecycleStart)

		ApplyMissedDay(h, lifecycleStart.AddDate(0, 0, 1))
		assert.Equal(t, 1, h.Streak)
		assert.False(t, h.CompletedToday, "day rolled over, flag must clear")
	})

	t.Run("GapResetsStreak", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7}
		ApplyToggle(h, true, lifecycleStart)

		ApplyMissedDay(h, lifecycleStart.AddDate(0, 0, 2))
		assert.Equal(t, 0, h.Streak)
	})

	t.Run("NeverCompletedResets", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7, Streak: 5}
		ApplyMissedDay(h, lifecycleStart)
		assert.Equal(t, 0, h.Streak)
	})
}

func TestNormalizeWindows(t *testing.T) {
	t.Run("DayRollover", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7}
		ApplyToggle(h, true, lifecycleStart)
		require.True(t, h.CompletedToday)

		NormalizeWindows(h, lifecycleStart.AddDate(0, 0, 1))
		assert.False(t, h.CompletedToday)
		assert.Equal(t, 1, h.Streak, "normalization never touches the streak")
	})

	t.Run("WeekRollover", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7}
		for day := 0; day < 5; day++ {
			ApplyToggle(h, true, lifecycleStart.AddDate(0, 0, day))
		}
		require.Equal(t, 5, h.CurrentWeekCompleted)

		// Next Monday: weekly counter resets, streak does not.
		NormalizeWindows(h, lifecycleStart.AddDate(0, 0, 7))
		assert.Equal(t, 0, h.CurrentWeekCompleted)
		assert.Equal(t, 5, h.Streak)
	})

	t.Run("SameDayNoop", func(t *testing.T) {
		h := &Habit{TargetDuration: 21, WeeklyTarget: 7}
		ApplyToggle(h, true, lifecycleStart)

		NormalizeWindows(h, lifecycleStart.Add(6*time.Hour))
		assert.True(t, h.CompletedToday)
		assert.Equal(t, 1, h.CurrentWeekCompleted)
	})
}

func TestIsCompletedDerived(t *testing.T) {
	h := &Habit{TargetDuration: 5, Streak: 4}
	assert.False(t, h.IsCompleted())
	h.Streak = 5
	assert.True(t, h.IsCompleted())

	// Zero target duration never auto-completes.
	zero := &Habit{TargetDuration: 0, Streak: 100}
	assert.False(t, zero.IsCompleted())
}
