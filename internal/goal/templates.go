package goal

// Template is a goal blueprint. OffsetDays sets the deadline relative
// to the generation instant and feeds the deadline sub-score, so the
// per-template values matter.
type Template struct {
	Title       string
	Description string
	Target      int
	Unit        string
	OffsetDays  int
	Category    Bucket
	Priority    Priority
	// CrossCategory templates span multiple habit areas and are always
	// candidates regardless of which buckets the user's habits hit.
	CrossCategory bool
}

var healthTemplates = []Template{
	{
		Title:       "Complete a 30-Day Morning Routine",
		Description: "Start every day with the same simple sequence for a full month.",
		Target:      30, Unit: "days", OffsetDays: 45,
		Category: BucketHealth, Priority: PriorityHigh,
	},
	{
		Title:       "Drink Enough Water Every Day",
		Description: "Hit your daily water intake for sixty days straight.",
		Target:      60, Unit: "days", OffsetDays: 90,
		Category: BucketHealth, Priority: PriorityMedium,
	},
	{
		Title:       "Sleep 8 Hours a Night",
		Description: "Protect a full night of sleep for three months.",
		Target:      90, Unit: "days", OffsetDays: 120,
		Category: BucketHealth, Priority: PriorityMedium,
	},
	{
		Title:       "Run Your First 5K",
		Description: "Train up to and finish a 5K race.",
		Target:      1, Unit: "races", OffsetDays: 90,
		Category: BucketHealth, Priority: PriorityHigh,
	},
	{
		Title:       "Cook 40 Healthy Meals at Home",
		Description: "Swap takeout for home cooking, forty meals at a time.",
		Target:      40, Unit: "meals", OffsetDays: 90,
		Category: BucketHealth, Priority: PriorityLow,
	},
}

var fitnessTemplates = []Template{
	{
		Title:       "Finish 50 Workouts",
		Description: "Fifty training sessions, any kind that gets you moving.",
		Target:      50, Unit: "workouts", OffsetDays: 120,
		Category: BucketFitness, Priority: PriorityHigh,
	},
	{
		Title:       "Train Three Times a Week for Three Months",
		Description: "Thirty-six sessions at a sustainable cadence.",
		Target:      36, Unit: "workouts", OffsetDays: 100,
		Category: BucketFitness, Priority: PriorityMedium,
	},
	{
		Title:       "Walk 10,000 Steps Daily for 60 Days",
		Description: "Two months of consistent daily movement.",
		Target:      60, Unit: "days", OffsetDays: 75,
		Category: BucketFitness, Priority: PriorityMedium,
	},
	{
		Title:       "Stretch Every Morning for 21 Days",
		Description: "Three weeks of short morning mobility work.",
		Target:      21, Unit: "days", OffsetDays: 30,
		Category: BucketFitness, Priority: PriorityLow,
	},
	{
		Title:       "Hold a Five-Minute Plank",
		Description: "Build core endurance up to a five-minute hold.",
		Target:      5, Unit: "minutes", OffsetDays: 60,
		Category: BucketFitness, Priority: PriorityMedium,
	},
}

var productivityTemplates = []Template{
	{
		Title:       "Read 12 Books This Year",
		Description: "One book a month across the year.",
		Target:      12, Unit: "books", OffsetDays: 365,
		Category: BucketProductivity, Priority: PriorityMedium,
	},
	{
		Title:       "Complete 3 Online Courses",
		Description: "Pick three courses that move your skills forward and finish them.",
		Target:      3, Unit: "courses", OffsetDays: 180,
		Category: BucketProductivity, Priority: PriorityMedium,
	},
	{
		Title:       "Log 100 Hours of Deep Work",
		Description: "Distraction-free focused work, tracked hour by hour.",
		Target:      100, Unit: "hours", OffsetDays: 120,
		Category: BucketProductivity, Priority: PriorityHigh,
	},
	{
		Title:       "Learn One New Skill",
		Description: "Take a single skill from zero to demonstrably useful.",
		Target:      1, Unit: "skills", OffsetDays: 90,
		Category: BucketProductivity, Priority: PriorityMedium,
	},
	{
		Title:       "Inbox Zero for 30 Days",
		Description: "End every workday with an empty inbox for a month.",
		Target:      30, Unit: "days", OffsetDays: 40,
		Category: BucketProductivity, Priority: PriorityLow,
	},
}

var mindfulnessTemplates = []Template{
	{
		Title:       "Meditate 30 Days in a Row",
		Description: "A full month of unbroken daily practice.",
		Target:      30, Unit: "days", OffsetDays: 45,
		Category: BucketMindfulness, Priority: PriorityHigh,
	},
	{
		Title:       "Write 50 Journal Entries",
		Description: "Fifty honest pages, whenever they come.",
		Target:      50, Unit: "entries", OffsetDays: 90,
		Category: BucketMindfulness, Priority: PriorityMedium,
	},
	{
		Title:       "Practice Gratitude for 60 Days",
		Description: "Note one thing you are grateful for, daily, for two months.",
		Target:      60, Unit: "days", OffsetDays: 75,
		Category: BucketMindfulness, Priority: PriorityMedium,
	},
	{
		Title:       "Complete a 7-Day Digital Detox Challenge",
		Description: "One week with screens off outside work hours.",
		Target:      7, Unit: "days", OffsetDays: 30,
		Category: BucketMindfulness, Priority: PriorityLow,
	},
}

var socialTemplates = []Template{
	{
		Title:       "Call Family Every Week",
		Description: "Twelve calls over three months, one per week.",
		Target:      12, Unit: "calls", OffsetDays: 90,
		Category: BucketSocial, Priority: PriorityMedium,
	},
	{
		Title:       "Meet Friends Twice a Month",
		Description: "Eight in-person meetups across four months.",
		Target:      8, Unit: "meetups", OffsetDays: 120,
		Category: BucketSocial, Priority: PriorityLow,
	},
	{
		Title:       "Join a Club or Community",
		Description: "Find one recurring group around something you enjoy.",
		Target:      1, Unit: "communities", OffsetDays: 60,
		Category: BucketSocial, Priority: PriorityMedium,
	},
	{
		Title:       "Host Two Dinners",
		Description: "Invite people over, twice.",
		Target:      2, Unit: "events", OffsetDays: 90,
		Category: BucketSocial, Priority: PriorityLow,
	},
}

// crossCategoryTemplates are always in the candidate pool.
var crossCategoryTemplates = []Template{
	{
		Title:       "Build a Complete Morning Routine",
		Description: "Chain your first three habits of the day into one routine.",
		Target:      21, Unit: "days", OffsetDays: 30,
		Category: BucketLifestyle, Priority: PriorityHigh, CrossCategory: true,
	},
	{
		Title:       "30-Day Personal Development Challenge",
		Description: "One deliberate improvement action every day for a month.",
		Target:      30, Unit: "days", OffsetDays: 45,
		Category: BucketLifestyle, Priority: PriorityHigh, CrossCategory: true,
	},
	{
		Title:       "Track Every Habit for 90 Days",
		Description: "Ninety days of logging, no gaps.",
		Target:      90, Unit: "days", OffsetDays: 100,
		Category: BucketLifestyle, Priority: PriorityMedium, CrossCategory: true,
	},
	{
		Title:       "Reach a 700 Wellness Score",
		Description: "Push your combined habit strength past 700 points.",
		Target:      700, Unit: "score", OffsetDays: 180,
		Category: BucketLifestyle, Priority: PriorityMedium, CrossCategory: true,
	},
	{
		Title:       "Keep a Weekly Review Routine",
		Description: "Twelve weekly reviews of what worked and what slipped.",
		Target:      12, Unit: "reviews", OffsetDays: 90,
		Category: BucketLifestyle, Priority: PriorityMedium, CrossCategory: true,
	},
	{
		Title:       "Take On a New Challenge Each Month",
		Description: "Three months, three small self-set challenges.",
		Target:      3, Unit: "challenges", OffsetDays: 100,
		Category: BucketLifestyle, Priority: PriorityLow, CrossCategory: true,
	},
	{
		Title:       "Design Your Ideal Week",
		Description: "Draft the week you want, then live one instance of it.",
		Target:      1, Unit: "plans", OffsetDays: 30,
		Category: BucketLifestyle, Priority: PriorityLow, CrossCategory: true,
	},
	{
		Title:       "100 Days of Consistency",
		Description: "Complete at least one habit every day for a hundred days.",
		Target:      100, Unit: "days", OffsetDays: 120,
		Category: BucketLifestyle, Priority: PriorityHigh, CrossCategory: true,
	},
}

// bucketTemplates maps each scoring bucket to its template list. The
// iteration order in the scorer is fixed separately; map access here is
// lookup-only.
var bucketTemplates = map[Bucket][]Template{
	BucketHealth:       healthTemplates,
	BucketFitness:      fitnessTemplates,
	BucketProductivity: productivityTemplates,
	BucketMindfulness:  mindfulnessTemplates,
	BucketSocial:       socialTemplates,
}

// TemplatesForBucket returns the template list for one bucket, or nil
// for lifestyle (cross-category templates are not a per-bucket pool).
func TemplatesForBucket(b Bucket) []Template {
	return bucketTemplates[b]
}
