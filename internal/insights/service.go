package insights

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
	"github.com/habitloop/habitloop-lambda/internal/habit"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
)

type MotivationResponse struct {
	Message string `json:"message"`
}

type Service interface {
	Motivation(ctx context.Context, habitID string) (*MotivationResponse, error)
	Schedule(ctx context.Context, habitID string) (*ScheduleSuggestion, error)
}

type service struct {
	provider  Provider
	habitRepo habit.HabitRepository
}

func NewService(provider Provider, habitRepo habit.HabitRepository) Service {
	return &service{provider: provider, habitRepo: habitRepo}
}

func (s *service) Motivation(ctx context.Context, habitID string) (*MotivationResponse, error) {
	h, err := s.ownedHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	msg, err := s.provider.MotivationalMessage(ctx, MotivationInput{
		Title:          h.Title,
		Streak:         h.Streak,
		BestStreak:     h.BestStreak,
		CompletionRate: h.CompletionRate(),
		CompletedToday: h.CompletedToday,
	})
	if err != nil {
		return nil, err
	}
	return &MotivationResponse{Message: msg}, nil
}

func (s *service) Schedule(ctx context.Context, habitID string) (*ScheduleSuggestion, error) {
	h, err := s.ownedHabit(ctx, habitID)
	if err != nil {
		return nil, err
	}

	in := ScheduleInput{Title: h.Title, IsBad: h.Type == habit.TypeBad}
	if details := h.BadHabitDetails(); details != nil {
		in.TimeOfDay = details.TimeOfDay
	}

	return s.provider.SuggestSchedule(ctx, in)
}

func (s *service) ownedHabit(ctx context.Context, habitID string) (*habit.Habit, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.Warn("User not authenticated")
		return nil, ErrUnauthorized
	}

	id, err := uuid.Parse(habitID)
	if err != nil {
		return nil, ErrInvalidID
	}

	h, err := s.habitRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if h.UserID != uuid.MustParse(claims.UserID) {
		return nil, ErrUnauthorized
	}
	return h, nil
}
