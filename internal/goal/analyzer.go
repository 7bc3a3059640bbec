package goal

import "strings"

// bucketKeywords is the label categorization table. It is deliberately
// distinct from the habit title classifier: it has a fitness bucket,
// and a label may land in more than one bucket. Exercise-flavored
// keywords appear under both fitness and health so that a label like
// "morning workout" raises both counts.
var bucketKeywords = map[Bucket][]string{
	BucketHealth: {
		"exercise", "workout", "gym", "run", "walk", "sport",
		"water", "sleep", "eat", "diet", "healthy", "smok", "drink",
	},
	BucketFitness: {
		"exercise", "workout", "gym", "run", "walk", "sport",
	},
	BucketMindfulness: {
		"medit", "mindful", "journal", "gratitude", "breath", "relax",
	},
	BucketSocial: {
		"call", "friend", "family", "meet", "social",
	},
	BucketProductivity: {
		"read", "study", "work", "learn", "write", "plan", "code",
	},
}

// scoringBucketOrder fixes the iteration order everywhere buckets are
// walked, so candidate collection is deterministic.
var scoringBucketOrder = []Bucket{
	BucketHealth,
	BucketFitness,
	BucketProductivity,
	BucketMindfulness,
	BucketSocial,
}

// CategorizeLabels aggregates free-text habit labels into per-bucket
// counts. Each label increments every bucket whose keyword list it
// matches; a label matching nothing defaults into productivity.
func CategorizeLabels(labels []string) map[Bucket]int {
	counts := make(map[Bucket]int, len(scoringBucketOrder))

	for _, label := range labels {
		lower := strings.ToLower(label)
		matched := false
		for _, bucket := range scoringBucketOrder {
			for _, kw := range bucketKeywords[bucket] {
				if strings.Contains(lower, kw) {
					counts[bucket]++
					matched = true
					break
				}
			}
		}
		if !matched {
			counts[BucketProductivity]++
		}
	}

	return counts
}
