package habit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/habitloop/habitloop-lambda/internal/user"
	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

// BadHabitDetails describes a habit the user wants to break. Only
// present when Type == TypeBad.
type BadHabitDetails struct {
	Frequency     int      `json:"frequency"`
	FrequencyUnit string   `json:"frequency_unit"`
	TimeOfDay     []string `json:"time_of_day,omitempty"`
	Triggers      []string `json:"triggers,omitempty"`
	Severity      Severity `json:"severity"`
	Impact        string   `json:"impact,omitempty"`
}

// Reminder is an optional notification schedule for a habit.
type Reminder struct {
	Enabled        bool              `json:"enabled"`
	Time           string            `json:"time,omitempty"` // "HH:MM"
	Frequency      ReminderFrequency `json:"frequency,omitempty"`
	DaysOfWeek     []string          `json:"days_of_week,omitempty"`
	CustomInterval int               `json:"custom_interval,omitempty"`
	CustomUnit     string            `json:"custom_unit,omitempty"`
}

type Habit struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Category    Category  `gorm:"type:text;not null" json:"category"`
	Type        HabitType `gorm:"type:text;not null;default:good" json:"habit_type"`

	Streak     int `gorm:"not null;default:0" json:"streak"`
	BestStreak int `gorm:"not null;default:0" json:"best_streak"`
	// TargetDuration is the consecutive-day count after which the habit
	// counts as established.
	TargetDuration       int            `gorm:"not null" json:"target_duration"`
	WeeklyTarget         int            `gorm:"not null;default:7" json:"weekly_target"`
	CurrentWeekCompleted int            `gorm:"not null;default:0" json:"current_week_completed"`
	CompletedToday       bool           `gorm:"not null;default:false" json:"completed_today"`
	LastCompletedOn      *util.DateOnly `gorm:"type:date" json:"last_completed_on,omitempty"`
	WeekStart            *util.DateOnly `gorm:"type:date" json:"-"`
	// EstablishedAt records the first instant the streak reached
	// TargetDuration. Once set it never clears, which is what makes the
	// established state sticky.
	EstablishedAt *time.Time `json:"established_at,omitempty"`

	PairedBadHabitID *uuid.UUID                           `gorm:"type:uuid" json:"paired_bad_habit_id,omitempty"`
	BadHabit         datatypes.JSONType[*BadHabitDetails] `gorm:"type:jsonb" json:"-"`
	Reminder         datatypes.JSONType[*Reminder]        `gorm:"type:jsonb" json:"-"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// IsCompleted is always derived, never stored: streak against target
// duration, or the sticky established marker.
func (h *Habit) IsCompleted() bool {
	if h.EstablishedAt != nil {
		return true
	}
	return h.TargetDuration > 0 && h.Streak >= h.TargetDuration
}

// CompletionRate is the weekly completion percentage. A zero or missing
// weekly target yields 0 rather than dividing by zero.
func (h *Habit) CompletionRate() float64 {
	if h.WeeklyTarget <= 0 {
		return 0
	}
	return float64(h.CurrentWeekCompleted) / float64(h.WeeklyTarget) * 100
}

// HasReminderTime reports whether the habit has an enabled reminder with
// a concrete time of day.
func (h *Habit) HasReminderTime() bool {
	rem := h.Reminder.Data()
	return rem != nil && rem.Enabled && rem.Time != ""
}

func (h *Habit) BadHabitDetails() *BadHabitDetails {
	return h.BadHabit.Data()
}

func (h *Habit) ReminderSchedule() *Reminder {
	return h.Reminder.Data()
}
