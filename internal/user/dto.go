package user

import (
	"time"

	"github.com/google/uuid"
)

type RegisterDTO struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginDTO struct {
	Code string `json:"code" binding:"required"`
}

type UpdateUserDTO struct {
	Name           *string `json:"name"`
	Picture        *string `json:"picture"`
	OnboardingDone *bool   `json:"onboarding_done"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Picture        string    `json:"picture,omitempty"`
	Provider       string    `json:"provider"`
	OnboardingDone bool      `json:"onboarding_done"`
	CreatedAt      time.Time `json:"created_at"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	User   UserResponse `json:"user"`
	Tokens TokenPair    `json:"-"`
}
