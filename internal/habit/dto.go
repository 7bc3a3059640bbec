package habit

import (
	"time"

	"github.com/google/uuid"

	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

type CreateHabitDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	// Category is optional; when absent the title is classified.
	Category         Category         `json:"category"`
	Type             HabitType        `json:"habit_type"`
	TargetDuration   int              `json:"target_duration" binding:"required"`
	WeeklyTarget     int              `json:"weekly_target"`
	BadHabit         *BadHabitDetails `json:"bad_habit_details"`
	Reminder         *Reminder        `json:"reminder"`
	PairedBadHabitID *uuid.UUID       `json:"paired_bad_habit_id"`
}

type UpdateHabitDTO struct {
	Title            *string          `json:"title"`
	Description      *string          `json:"description"`
	Category         *Category        `json:"category"`
	TargetDuration   *int             `json:"target_duration"`
	WeeklyTarget     *int             `json:"weekly_target"`
	BadHabit         *BadHabitDetails `json:"bad_habit_details"`
	Reminder         *Reminder        `json:"reminder"`
	PairedBadHabitID *uuid.UUID       `json:"paired_bad_habit_id"`
}

type ToggleDTO struct {
	Completed *bool `json:"completed" binding:"required"`
}

type HabitResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description,omitempty"`
	Category             Category         `json:"category"`
	Type                 HabitType        `json:"habit_type"`
	Streak               int              `json:"streak"`
	BestStreak           int              `json:"best_streak"`
	TargetDuration       int              `json:"target_duration"`
	WeeklyTarget         int              `json:"weekly_target"`
	CurrentWeekCompleted int              `json:"current_week_completed"`
	CompletedToday       bool             `json:"completed_today"`
	LastCompletedOn      *util.DateOnly   `json:"last_completed_on,omitempty"`
	IsCompleted          bool             `json:"is_completed"`
	CompletionRate       float64          `json:"completion_rate"`
	EstablishedAt        *time.Time       `json:"established_at,omitempty"`
	PairedBadHabitID     *uuid.UUID       `json:"paired_bad_habit_id,omitempty"`
	BadHabit             *BadHabitDetails `json:"bad_habit_details,omitempty"`
	Reminder             *Reminder        `json:"reminder,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

type HabitStats struct {
	Total          int `json:"total"`
	GoodHabits     int `json:"good_habits"`
	BadHabits      int `json:"bad_habits"`
	CompletedToday int `json:"completed_today"`
	Established    int `json:"established"`
}

type CategoryStats struct {
	Health       int `json:"health"`
	Productivity int `json:"productivity"`
	Mindfulness  int `json:"mindfulness"`
	Social       int `json:"social"`
}

type DashboardStatsResponse struct {
	Stats           HabitStats    `json:"stats"`
	Categories      CategoryStats `json:"categories"`
	AverageStrength int           `json:"average_strength"`
	BestStreak      int           `json:"best_streak"`
	// WeeklyProgress is completions this week over the summed weekly
	// targets, as a percentage.
	WeeklyProgress float64 `json:"weekly_progress"`
}
