package habit

// Category is the closed set of habit categories. The lowercase values
// are part of the API contract with the web client.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryMindfulness  Category = "mindfulness"
	CategorySocial       Category = "social"
)

var AllCategories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryMindfulness,
	CategorySocial,
}

func (c Category) IsValid() bool {
	for _, v := range AllCategories {
		if c == v {
			return true
		}
	}
	return false
}

type HabitType string

const (
	TypeGood HabitType = "good"
	TypeBad  HabitType = "bad"
)

var AllTypes = []HabitType{TypeGood, TypeBad}

func (t HabitType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

var AllSeverities = []Severity{SeverityLow, SeverityMedium, SeverityHigh}

func (s Severity) IsValid() bool {
	for _, v := range AllSeverities {
		if s == v {
			return true
		}
	}
	return false
}

type ReminderFrequency string

const (
	ReminderDaily  ReminderFrequency = "daily"
	ReminderWeekly ReminderFrequency = "weekly"
	ReminderCustom ReminderFrequency = "custom"
)

var AllReminderFrequencies = []ReminderFrequency{ReminderDaily, ReminderWeekly, ReminderCustom}

func (f ReminderFrequency) IsValid() bool {
	for _, v := range AllReminderFrequencies {
		if f == v {
			return true
		}
	}
	return false
}
