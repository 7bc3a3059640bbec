package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	Picture      string    `gorm:"type:text" json:"picture,omitempty"`
	Provider     string    `gorm:"type:text;not null;default:local" json:"provider"`
	// GoogleRefreshToken is stored AES-GCM encrypted via config.Encrypt.
	GoogleRefreshToken string    `gorm:"type:text" json:"-"`
	OnboardingDone     bool      `gorm:"not null;default:false" json:"onboarding_done"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
