package goal

import (
	"time"

	"github.com/google/uuid"
)

// GenerateGoalsDTO carries the onboarding snapshot: the labels of the
// habits the user selected.
type GenerateGoalsDTO struct {
	Habits []string `json:"habits" binding:"required"`
}

type UpdateGoalDTO struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Target      *int       `json:"target"`
	Current     *int       `json:"current"`
	Deadline    *time.Time `json:"deadline"`
	Priority    *Priority  `json:"priority"`
}

type GoalResponse struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Target        int        `json:"target"`
	Current       int        `json:"current"`
	Unit          string     `json:"unit"`
	Deadline      time.Time  `json:"deadline"`
	Category      Bucket     `json:"category"`
	Priority      Priority   `json:"priority"`
	AIGenerated   bool       `json:"ai_generated"`
	SourceHabitID *uuid.UUID `json:"source_habit_id,omitempty"`
	Progress      float64    `json:"progress"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
