package goal

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var AllPriorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) IsValid() bool {
	for _, v := range AllPriorities {
		if p == v {
			return true
		}
	}
	return false
}

// Bucket is a goal scoring category. Wider than the habit category set:
// fitness exists only here, and lifestyle marks cross-category
// templates spanning multiple habit areas.
type Bucket string

const (
	BucketHealth       Bucket = "health"
	BucketFitness      Bucket = "fitness"
	BucketProductivity Bucket = "productivity"
	BucketMindfulness  Bucket = "mindfulness"
	BucketSocial       Bucket = "social"
	BucketLifestyle    Bucket = "lifestyle"
)
