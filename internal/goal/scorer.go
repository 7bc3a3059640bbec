package goal

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-lambda/internal/habit"
)

// Bulk generation bounds: between 3 and 5 goals, aiming for one fewer
// than the number of selected habits.
const (
	minGeneratedGoals = 3
	maxGeneratedGoals = 5
)

var priorityScores = map[Priority]int{
	PriorityHigh:   30,
	PriorityMedium: 20,
	PriorityLow:    10,
}

var categoryScores = map[Bucket]int{
	BucketHealth:       25,
	BucketFitness:      25,
	BucketProductivity: 20,
	BucketMindfulness:  18,
	BucketSocial:       15,
}

const defaultCategoryScore = 10

// scoreTemplate computes the desirability score of one template at
// generation time: priority + category base + complexity + deadline
// proximity, plus additive title/cross-category bonuses.
func scoreTemplate(t Template, now time.Time) int {
	score := priorityScores[t.Priority]

	if base, ok := categoryScores[t.Category]; ok {
		score += base
	} else {
		score += defaultCategoryScore
	}

	score += complexityScore(t)
	score += deadlineScore(daysUntil(now, t.deadline(now)))

	if t.CrossCategory {
		score += 15
	}
	lower := strings.ToLower(t.Title)
	if strings.Contains(lower, "morning") || strings.Contains(lower, "routine") {
		score += 10
	}
	if strings.Contains(lower, "personal development") || strings.Contains(lower, "challenge") {
		score += 12
	}

	return score
}

// complexityScore rewards achievable targets, keyed on the deadline
// unit the target is denominated in.
func complexityScore(t Template) int {
	switch t.Unit {
	case "days":
		switch {
		case t.Target <= 30:
			return 20
		case t.Target <= 90:
			return 25
		default:
			return 15
		}
	case "books":
		if t.Target <= 12 {
			return 20
		}
		return 15
	case "hours":
		if t.Target <= 50 {
			return 20
		}
		return 15
	case "courses", "skills":
		if t.Target <= 3 {
			return 20
		}
		return 15
	case "workouts", "races":
		return 22
	case "score", "points":
		return 18
	default:
		return 15
	}
}

// deadlineScore favors the 30-180 day sweet spot. The 15-365 band is
// the non-overlapping remainder around it.
func deadlineScore(days int) int {
	switch {
	case days >= 30 && days <= 180:
		return 20
	case days >= 15 && days <= 365:
		return 15
	case days < 15:
		return 5
	default:
		return 10
	}
}

func daysUntil(now, deadline time.Time) int {
	return int(deadline.Sub(now).Hours() / 24)
}

func (t Template) deadline(now time.Time) time.Time {
	return now.AddDate(0, 0, t.OffsetDays)
}

// GenerateGoals builds a scored, ranked goal list from the labels of
// the user's selected habits. Candidates come from every bucket the
// labels touched plus the cross-category pool; the top
// clamp(len(labels)-1, 3, 5) by score win. The sort is stable, so ties
// keep their candidate-pool order.
func GenerateGoals(labels []string, userID uuid.UUID, now time.Time) []*Goal {
	counts := CategorizeLabels(labels)

	var candidates []Template
	for _, bucket := range scoringBucketOrder {
		if counts[bucket] > 0 {
			candidates = append(candidates, bucketTemplates[bucket]...)
		}
	}
	candidates = append(candidates, crossCategoryTemplates...)

	scores := make([]int, len(candidates))
	for i, t := range candidates {
		scores[i] = scoreTemplate(t, now)
	}

	order := make([]int, len(candidates))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	count := len(labels) - 1
	if count < minGeneratedGoals {
		count = minGeneratedGoals
	}
	if count > maxGeneratedGoals {
		count = maxGeneratedGoals
	}
	if count > len(candidates) {
		count = len(candidates)
	}

	goals := make([]*Goal, 0, count)
	for _, idx := range order[:count] {
		goals = append(goals, newGoalFromTemplate(candidates[idx], userID, nil, now))
	}
	return goals
}

// habitBuckets maps the core habit categories onto scoring buckets.
var habitBuckets = map[habit.Category]Bucket{
	habit.CategoryHealth:       BucketHealth,
	habit.CategoryProductivity: BucketProductivity,
	habit.CategoryMindfulness:  BucketMindfulness,
	habit.CategorySocial:       BucketSocial,
}

// GenerateGoalForHabit picks one template uniformly at random from the
// habit's own category pool. Unscored on purpose: the quick single
// suggestion and the considered bulk ranking are separate behaviors and
// must stay separate.
func GenerateGoalForHabit(h *habit.Habit, rng *rand.Rand, now time.Time) *Goal {
	bucket, ok := habitBuckets[h.Category]
	if !ok {
		bucket = BucketHealth
	}

	pool := bucketTemplates[bucket]
	t := pool[rng.Intn(len(pool))]

	sourceID := h.ID
	return newGoalFromTemplate(t, h.UserID, &sourceID, now)
}

func newGoalFromTemplate(t Template, userID uuid.UUID, sourceHabitID *uuid.UUID, now time.Time) *Goal {
	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         t.Title,
		Description:   t.Description,
		Target:        t.Target,
		Current:       0,
		Unit:          t.Unit,
		Deadline:      t.deadline(now),
		Category:      t.Category,
		Priority:      t.Priority,
		AIGenerated:   true,
		SourceHabitID: sourceHabitID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
