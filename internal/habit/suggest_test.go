package habit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHabit(category Category, title string) *Habit {
	return &Habit{
		Title:        title,
		Category:     category,
		WeeklyTarget: 7,
	}
}

func TestSuggestNeverEmptyAndCapped(t *testing.T) {
	habits := []*Habit{
		testHabit(CategoryHealth, "Morning run"),
		testHabit(CategoryHealth, "Daily meditation"),
		testHabit(CategoryProductivity, "Write every day"),
		testHabit(CategoryMindfulness, "Gratitude"),
		testHabit(CategorySocial, "Call a friend"),
		testHabit(CategoryHealth, "Unmatchable title"),
	}

	for _, h := range habits {
		out := Suggest(h)
		require.NotEmpty(t, out, "suggestions for %q must never be empty", h.Title)
		assert.LessOrEqual(t, len(out), 3, "suggestions for %q exceed the cap", h.Title)
	}
}

func TestSuggestHabitStacking(t *testing.T) {
	// A health habit matching no keyword table isolates the streak
	// rule from table matches.
	h := testHabit(CategoryHealth, "Cold shower")
	h.Streak = 7
	h.CurrentWeekCompleted = 7 // completion rate 100, suppresses the reminder rule

	out := Suggest(h)
	require.Len(t, out, 1)
	assert.Equal(t, "habit stacking", out[0].Reason)
	assert.Equal(t, CategoryHealth, out[0].Category, "stacking suggestion keeps the habit's own category")
}

func TestSuggestReminderRule(t *testing.T) {
	h := testHabit(CategoryHealth, "Cold shower")
	h.CurrentWeekCompleted = 4 // 57% of 7

	out := Suggest(h)
	require.Len(t, out, 1)
	assert.Equal(t, "completion rate below 70%", out[0].Reason)
}

func TestSuggestMissingWeeklyTargetTreatedAsZeroRate(t *testing.T) {
	h := testHabit(CategoryHealth, "Cold shower")
	h.WeeklyTarget = 0

	out := Suggest(h)
	require.Len(t, out, 1)
	assert.Equal(t, "completion rate below 70%", out[0].Reason)
}

func TestSuggestFallback(t *testing.T) {
	h := testHabit(CategorySocial, "zzz")
	h.Category = CategoryHealth // no table match, no empty-keyword rule for health
	h.CurrentWeekCompleted = 7  // rate 100
	h.Streak = 3

	out := Suggest(h)
	require.Len(t, out, 1)
	assert.Equal(t, "general guidance", out[0].Reason)
}

func TestSuggestTruncationOrder(t *testing.T) {
	// An exercise habit with a long streak and a poor completion rate
	// hits the table (2 entries) plus both conditional rules; only the
	// first three survive, in insertion order.
	h := testHabit(CategoryHealth, "Morning workout")
	h.Streak = 10
	h.CurrentWeekCompleted = 1

	out := Suggest(h)
	require.Len(t, out, 3)
	assert.Equal(t, "complements your training habit", out[0].Reason)
	assert.Equal(t, "complements your training habit", out[1].Reason)
	assert.Equal(t, "habit stacking", out[2].Reason)
}

func TestSuggestConcatenatesMatchingTables(t *testing.T) {
	// A health title matching both the meditation and exercise tables
	// collects entries from both before the cap applies.
	h := testHabit(CategoryHealth, "Meditate after my run")
	h.CurrentWeekCompleted = 7

	out := Suggest(h)
	require.Len(t, out, 3)
	assert.Equal(t, "pairs well with a meditation practice", out[0].Reason)
	assert.Equal(t, "pairs well with a meditation practice", out[1].Reason)
	assert.Equal(t, "complements your training habit", out[2].Reason)
}
