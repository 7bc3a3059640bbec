package goal

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitloop/habitloop-lambda/internal/habit"
)

var genTime = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestGenerateGoalsCount(t *testing.T) {
	tests := []struct {
		labels int
		want   int
	}{
		{0, 3},
		{1, 3},
		{2, 3},
		{4, 3},
		{5, 4},
		{6, 5},
		{10, 5},
	}

	for _, tt := range tests {
		labels := make([]string, tt.labels)
		for i := range labels {
			labels[i] = "Drink water"
		}
		goals := GenerateGoals(labels, uuid.New(), genTime)
		assert.Len(t, goals, tt.want, "labels=%d", tt.labels)
	}
}

func TestGenerateGoalsStamping(t *testing.T) {
	userID := uuid.New()
	goals := GenerateGoals([]string{"Meditate", "Run", "Read"}, userID, genTime)
	require.NotEmpty(t, goals)

	seen := map[uuid.UUID]bool{}
	for _, g := range goals {
		assert.True(t, g.AIGenerated)
		assert.Equal(t, userID, g.UserID)
		assert.Nil(t, g.SourceHabitID)
		assert.Equal(t, 0, g.Current)
		assert.Equal(t, genTime, g.CreatedAt)
		assert.True(t, g.Deadline.After(genTime))
		assert.False(t, seen[g.ID], "duplicate goal id")
		seen[g.ID] = true
	}
}

func TestGenerateGoalsDeterministicRanking(t *testing.T) {
	labels := []string{"Morning run", "Read books", "Meditate", "Call mom"}
	first := GenerateGoals(labels, uuid.Nil, genTime)
	second := GenerateGoals(labels, uuid.Nil, genTime)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Title, second[i].Title, "bulk generation must be deterministic")
	}
}

func TestGenerateGoalsCandidatesRespectBuckets(t *testing.T) {
	// Only social labels: candidates are social + cross-category, so no
	// generated goal may come from, say, the fitness pool.
	goals := GenerateGoals([]string{"Call a friend", "Meet people", "Call family"}, uuid.Nil, genTime)
	for _, g := range goals {
		assert.Contains(t, []Bucket{BucketSocial, BucketLifestyle}, g.Category)
	}
}

func TestScoreTemplateComponents(t *testing.T) {
	t.Run("PriorityWeights", func(t *testing.T) {
		base := Template{Unit: "meals", Target: 40, OffsetDays: 90, Category: BucketSocial}

		high, med, low := base, base, base
		high.Priority = PriorityHigh
		med.Priority = PriorityMedium
		low.Priority = PriorityLow

		assert.Equal(t, scoreTemplate(med, genTime)+10, scoreTemplate(high, genTime))
		assert.Equal(t, scoreTemplate(low, genTime)+10, scoreTemplate(med, genTime))
	})

	t.Run("CategoryBase", func(t *testing.T) {
		base := Template{Unit: "meals", Target: 40, OffsetDays: 90, Priority: PriorityLow}

		health, social, other := base, base, base
		health.Category = BucketHealth
		social.Category = BucketSocial
		other.Category = Bucket("unknown")

		assert.Equal(t, scoreTemplate(social, genTime)+10, scoreTemplate(health, genTime))
		assert.Equal(t, scoreTemplate(other, genTime)+5, scoreTemplate(social, genTime))
	})

	t.Run("CrossCategoryBonus", func(t *testing.T) {
		base := Template{Unit: "meals", Target: 40, OffsetDays: 90, Category: BucketSocial, Priority: PriorityLow}
		cross := base
		cross.CrossCategory = true
		assert.Equal(t, scoreTemplate(base, genTime)+15, scoreTemplate(cross, genTime))
	})

	t.Run("TitleBonusesStack", func(t *testing.T) {
		base := Template{Unit: "meals", Target: 40, OffsetDays: 90, Category: BucketSocial, Priority: PriorityLow}
		boosted := base
		boosted.Title = "Morning Personal Development Routine Challenge"
		// +10 for morning/routine, +12 for personal development/challenge.
		assert.Equal(t, scoreTemplate(base, genTime)+22, scoreTemplate(boosted, genTime))
	})
}

func TestComplexityScore(t *testing.T) {
	tests := []struct {
		unit   string
		target int
		want   int
	}{
		{"days", 21, 20},
		{"days", 30, 20},
		{"days", 31, 25},
		{"days", 90, 25},
		{"days", 91, 15},
		{"books", 12, 20},
		{"books", 13, 15},
		{"hours", 50, 20},
		{"hours", 100, 15},
		{"courses", 3, 20},
		{"courses", 4, 15},
		{"skills", 1, 20},
		{"workouts", 50, 22},
		{"races", 1, 22},
		{"score", 700, 18},
		{"meals", 40, 15},
	}
	for _, tt := range tests {
		got := complexityScore(Template{Unit: tt.unit, Target: tt.target})
		assert.Equal(t, tt.want, got, "unit=%s target=%d", tt.unit, tt.target)
	}
}

func TestDeadlineScore(t *testing.T) {
	tests := []struct {
		days int
		want int
	}{
		{5, 5},
		{14, 5},
		{15, 15},
		{29, 15},
		{30, 20},
		{45, 20}, // the 45-day offset always scores 20 on generation day
		{180, 20},
		{181, 15},
		{365, 15},
		{400, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, deadlineScore(tt.days), "days=%d", tt.days)
	}
}

func TestGenerateGoalForHabit(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("CategoryNeverCrosses", func(t *testing.T) {
		h := &habit.Habit{
			ID:       uuid.New(),
			UserID:   uuid.New(),
			Title:    "Meditate",
			Category: habit.CategoryMindfulness,
		}

		for i := 0; i < 50; i++ {
			g := GenerateGoalForHabit(h, rng, genTime)
			assert.Equal(t, BucketMindfulness, g.Category)
		}
	})

	t.Run("Stamping", func(t *testing.T) {
		h := &habit.Habit{ID: uuid.New(), UserID: uuid.New(), Category: habit.CategoryHealth}
		g := GenerateGoalForHabit(h, rng, genTime)

		require.NotNil(t, g.SourceHabitID)
		assert.Equal(t, h.ID, *g.SourceHabitID)
		assert.Equal(t, h.UserID, g.UserID)
		assert.True(t, g.AIGenerated)
	})

	t.Run("DrawsFromWholePool", func(t *testing.T) {
		h := &habit.Habit{ID: uuid.New(), UserID: uuid.New(), Category: habit.CategoryHealth}

		titles := map[string]bool{}
		for i := 0; i < 200; i++ {
			titles[GenerateGoalForHabit(h, rng, genTime).Title] = true
		}
		assert.Len(t, titles, len(TemplatesForBucket(BucketHealth)), "random pick should eventually hit every template")
	})
}
