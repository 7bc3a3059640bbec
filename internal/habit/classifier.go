package habit

import "strings"

// categoryKeywords is checked in order; the first bucket containing a
// matching keyword wins, so a title like "Morning Exercise Routine"
// lands in health even though other buckets could also claim it. The
// order (health, productivity, mindfulness, social) is deliberate and
// must not be reshuffled.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryHealth, []string{"exercise", "workout", "gym", "run", "walk", "water", "sleep"}},
	{CategoryProductivity, []string{"read", "study", "work", "write", "plan", "code"}},
	{CategoryMindfulness, []string{"meditation", "meditate", "mindfulness", "journal", "breath"}},
	{CategorySocial, []string{"call", "meet", "friend", "family"}},
}

// ClassifyCategory maps a free-text habit title to a category by
// substring keyword matching. Total over all strings; defaults to
// health when nothing matches.
func ClassifyCategory(title string) Category {
	lower := strings.ToLower(title)
	for _, bucket := range categoryKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.category
			}
		}
	}
	return CategoryHealth
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
