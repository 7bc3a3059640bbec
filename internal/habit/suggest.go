package habit

import (
	"fmt"
	"strings"
)

// Suggestion is a follow-up habit recommendation derived from an
// existing habit.
type Suggestion struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Reason      string   `json:"reason"`
}

// maxSuggestions caps the output at the first three entries in
// insertion order. This is a hard cap, not a ranking.
const maxSuggestions = 3

type suggestionRule struct {
	category Category
	// keywords filters on the lowercased title; empty means the rule
	// applies to every habit of the category.
	keywords []string
	entries  []Suggestion
}

var suggestionRules = []suggestionRule{
	{
		category: CategoryHealth,
		keywords: []string{"meditation", "meditate"},
		entries: []Suggestion{
			{
				Title:       "Try box breathing",
				Description: "Add two minutes of box breathing right after your session to deepen the calm.",
				Category:    CategoryMindfulness,
				Reason:      "pairs well with a meditation practice",
			},
			{
				Title:       "Evening wind-down",
				Description: "A short body scan before bed builds on the focus you train during the day.",
				Category:    CategoryMindfulness,
				Reason:      "pairs well with a meditation practice",
			},
		},
	},
	{
		category: CategoryHealth,
		keywords: []string{"exercise", "workout", "gym", "run", "walk"},
		entries: []Suggestion{
			{
				Title:       "Post-workout stretch",
				Description: "Five minutes of stretching after training speeds recovery and prevents soreness.",
				Category:    CategoryHealth,
				Reason:      "complements your training habit",
			},
			{
				Title:       "Lay out gear the night before",
				Description: "Removing the morning decision makes it far more likely you show up.",
				Category:    CategoryHealth,
				Reason:      "complements your training habit",
			},
		},
	},
	{
		category: CategoryProductivity,
		entries: []Suggestion{
			{
				Title:       "Plan tomorrow tonight",
				Description: "Write down your top three tasks before closing the day.",
				Category:    CategoryProductivity,
				Reason:      "builds on your productivity habit",
			},
			{
				Title:       "Two-minute tidy",
				Description: "Reset your workspace at the end of each session so starting is frictionless.",
				Category:    CategoryProductivity,
				Reason:      "builds on your productivity habit",
			},
		},
	},
	{
		category: CategoryMindfulness,
		entries: []Suggestion{
			{
				Title:       "One-line gratitude note",
				Description: "Write a single sentence about something that went well today.",
				Category:    CategoryMindfulness,
				Reason:      "builds on your mindfulness habit",
			},
		},
	},
	{
		category: CategorySocial,
		entries: []Suggestion{
			{
				Title:       "Weekly catch-up slot",
				Description: "Block a recurring half hour for reaching out so it never depends on remembering.",
				Category:    CategorySocial,
				Reason:      "builds on your social habit",
			},
		},
	},
}

// Suggest produces up to three follow-up suggestions for a habit. Table
// matches come first, then the streak and consistency rules; a single
// generic fallback guarantees the result is never empty.
func Suggest(h *Habit) []Suggestion {
	title := strings.ToLower(h.Title)
	var out []Suggestion

	for _, rule := range suggestionRules {
		if rule.category != h.Category {
			continue
		}
		if len(rule.keywords) > 0 && !containsAny(title, rule.keywords) {
			continue
		}
		out = append(out, rule.entries...)
	}

	if h.Streak >= 7 {
		out = append(out, Suggestion{
			Title:       "Stack a micro-habit",
			Description: fmt.Sprintf("Your %q streak is solid. Attach one tiny follow-up action right after it.", h.Title),
			Category:    h.Category,
			Reason:      "habit stacking",
		})
	}

	if h.CompletionRate() < 70 {
		out = append(out, Suggestion{
			Title:       "Set a daily reminder",
			Description: "A reminder at a fixed time removes the need to remember on busy days.",
			Category:    h.Category,
			Reason:      "completion rate below 70%",
		})
	}

	if len(out) == 0 {
		out = append(out, Suggestion{
			Title:       "Shrink the habit",
			Description: "Make the daily version so small it feels almost too easy, then grow from there.",
			Category:    h.Category,
			Reason:      "general guidance",
		})
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
