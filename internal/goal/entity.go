package goal

import (
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-lambda/internal/user"
)

type Goal struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User        user.User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Target      int       `gorm:"not null" json:"target"`
	Current     int       `gorm:"not null;default:0" json:"current"`
	Unit        string    `gorm:"type:text;not null" json:"unit"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	Category    Bucket    `gorm:"type:text;not null" json:"category"`
	Priority    Priority  `gorm:"type:text;not null" json:"priority"`
	AIGenerated bool      `gorm:"not null;default:false" json:"ai_generated"`
	// SourceHabitID is set only on goals produced by the single-habit
	// path.
	SourceHabitID *uuid.UUID `gorm:"type:uuid" json:"source_habit_id,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
