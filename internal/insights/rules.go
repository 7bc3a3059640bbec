package insights

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Message pools, selected by streak and completion-rate rules. The pick
// within a pool is random; the pool choice is deterministic.
var (
	milestoneMessages = []string{
		"A month straight on %q. This is not luck anymore, it is who you are.",
		"%q has survived thirty days of real life. That is identity-level consistency.",
		"Thirty-plus days of %q. Most people never get here.",
	}
	buildingMessages = []string{
		"A full week of %q. The hardest part is behind you.",
		"Seven days and counting on %q. Momentum is on your side now.",
		"%q is becoming automatic. Keep the chain alive.",
	}
	strugglingMessages = []string{
		"%q had a rough week. Shrink it until it is too easy to skip.",
		"Missed days on %q are data, not failure. What got in the way?",
		"One small rep of %q today beats a perfect plan for tomorrow.",
	}
	steadyMessages = []string{
		"Every completion of %q is a vote for the person you want to be.",
		"Nothing flashy about today's %q. That is exactly how habits are built.",
		"Showing up for %q again today. Quiet consistency wins.",
	}
)

// Default reminder slots keyed by the coarse time-of-day labels the
// client uses for bad-habit tracking. A reminder lands slightly before
// the habitual slot so the user gets ahead of the urge.
var slotTimes = map[string]string{
	"morning":   "07:30",
	"afternoon": "13:30",
	"evening":   "18:30",
	"night":     "21:30",
}

const defaultReminderTime = "09:00"

// ruleProvider is shared across request goroutines; the mutex guards
// the rand.Rand, which is not safe for concurrent use.
type ruleProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRuleProvider() Provider {
	return &ruleProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewRuleProviderWithSource pins the random source for tests.
func NewRuleProviderWithSource(rng *rand.Rand) Provider {
	return &ruleProvider{rng: rng}
}

func (p *ruleProvider) MotivationalMessage(_ context.Context, in MotivationInput) (string, error) {
	pool := steadyMessages
	switch {
	case in.Streak >= 30:
		pool = milestoneMessages
	case in.Streak >= 7:
		pool = buildingMessages
	case in.CompletionRate < 40:
		pool = strugglingMessages
	}

	p.mu.Lock()
	msg := pool[p.rng.Intn(len(pool))]
	p.mu.Unlock()
	return fmt.Sprintf(msg, in.Title), nil
}

func (p *ruleProvider) SuggestSchedule(_ context.Context, in ScheduleInput) (*ScheduleSuggestion, error) {
	if in.IsBad && len(in.TimeOfDay) > 0 {
		slot := in.TimeOfDay[0]
		if t, ok := slotTimes[slot]; ok {
			return &ScheduleSuggestion{
				Time:      t,
				Frequency: "daily",
				Reason:    fmt.Sprintf("you usually reach for this habit in the %s; a nudge just before helps you catch it", slot),
			}, nil
		}
	}

	return &ScheduleSuggestion{
		Time:      defaultReminderTime,
		Frequency: "daily",
		Reason:    "a fixed mid-morning check-in works well for most habits",
	}, nil
}
