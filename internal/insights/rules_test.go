package insights

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider() Provider {
	return NewRuleProviderWithSource(rand.New(rand.NewSource(1)))
}

// poolContains reports whether msg was formatted from one of the pool
// templates with the given title.
func poolContains(pool []string, msg, title string) bool {
	for _, tpl := range pool {
		if msg == strings.Replace(tpl, "%q", `"`+title+`"`, 1) {
			return true
		}
	}
	return false
}

func TestMotivationalMessagePoolSelection(t *testing.T) {
	tests := []struct {
		name string
		in   MotivationInput
		pool []string
	}{
		{"MilestoneStreak", MotivationInput{Title: "Meditate", Streak: 30, CompletionRate: 100}, milestoneMessages},
		{"LongStreakStaysMilestone", MotivationInput{Title: "Meditate", Streak: 120, CompletionRate: 10}, milestoneMessages},
		{"BuildingStreak", MotivationInput{Title: "Run", Streak: 7, CompletionRate: 100}, buildingMessages},
		{"StreakBeatsLowRate", MotivationInput{Title: "Run", Streak: 8, CompletionRate: 10}, buildingMessages},
		{"Struggling", MotivationInput{Title: "Journal", Streak: 2, CompletionRate: 39}, strugglingMessages},
		{"Steady", MotivationInput{Title: "Read", Streak: 3, CompletionRate: 80}, steadyMessages},
		{"SteadyAtRateBoundary", MotivationInput{Title: "Read", Streak: 0, CompletionRate: 40}, steadyMessages},
	}

	p := testProvider()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Random pick within the pool, so sample repeatedly.
			for i := 0; i < 20; i++ {
				msg, err := p.MotivationalMessage(context.Background(), tt.in)
				require.NoError(t, err)
				assert.True(t, poolContains(tt.pool, msg, tt.in.Title), "message %q not in expected pool", msg)
			}
		})
	}
}

func TestMotivationalMessageMentionsHabit(t *testing.T) {
	p := testProvider()
	msg, err := p.MotivationalMessage(context.Background(), MotivationInput{Title: "Cold shower", Streak: 50})
	require.NoError(t, err)
	assert.Contains(t, msg, `"Cold shower"`)
}

// One provider instance serves all requests, so concurrent calls must
// be safe. Run with the race detector.
func TestMotivationalMessageConcurrent(t *testing.T) {
	p := NewRuleProvider()
	in := MotivationInput{Title: "Run", Streak: 10, CompletionRate: 80}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := p.MotivationalMessage(context.Background(), in); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}

func TestSuggestSchedule(t *testing.T) {
	p := testProvider()

	t.Run("BadHabitSlotMapping", func(t *testing.T) {
		for slot, want := range map[string]string{
			"morning":   "07:30",
			"afternoon": "13:30",
			"evening":   "18:30",
			"night":     "21:30",
		} {
			s, err := p.SuggestSchedule(context.Background(), ScheduleInput{
				Title: "Doomscrolling", IsBad: true, TimeOfDay: []string{slot},
			})
			require.NoError(t, err)
			assert.Equal(t, want, s.Time)
			assert.Equal(t, "daily", s.Frequency)
			assert.Contains(t, s.Reason, slot)
		}
	})

	t.Run("UsesFirstSlot", func(t *testing.T) {
		s, err := p.SuggestSchedule(context.Background(), ScheduleInput{
			Title: "Snacking", IsBad: true, TimeOfDay: []string{"evening", "night"},
		})
		require.NoError(t, err)
		assert.Equal(t, "18:30", s.Time)
	})

	t.Run("UnknownSlotFallsBack", func(t *testing.T) {
		s, err := p.SuggestSchedule(context.Background(), ScheduleInput{
			Title: "Snacking", IsBad: true, TimeOfDay: []string{"dawn"},
		})
		require.NoError(t, err)
		assert.Equal(t, defaultReminderTime, s.Time)
	})

	t.Run("GoodHabitDefault", func(t *testing.T) {
		s, err := p.SuggestSchedule(context.Background(), ScheduleInput{Title: "Read", TimeOfDay: []string{"morning"}})
		require.NoError(t, err)
		assert.Equal(t, defaultReminderTime, s.Time)
		assert.Equal(t, "daily", s.Frequency)
	})
}
