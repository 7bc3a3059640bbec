package goal

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
	"github.com/habitloop/habitloop-lambda/internal/habit"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
	ErrInvalidInput = errors.New("invalid input")
	ErrNoHabits     = errors.New("at least one habit label is required")
)

type GoalService interface {
	Generate(ctx context.Context, dto GenerateGoalsDTO) ([]*GoalResponse, error)
	GenerateForHabit(ctx context.Context, habitID string) (*GoalResponse, error)
	FindAllByUser(ctx context.Context) ([]*GoalResponse, error)
	FindByID(ctx context.Context, id string) (*GoalResponse, error)
	Update(ctx context.Context, id string, dto UpdateGoalDTO) (*GoalResponse, error)
	DeleteByID(ctx context.Context, id string) error
}

type goalService struct {
	repo      GoalRepository
	habitRepo habit.HabitRepository
	now       func() time.Time

	// rngMu guards rng: one service instance serves concurrent request
	// goroutines and rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewService(repo GoalRepository, habitRepo habit.HabitRepository) GoalService {
	return &goalService{
		repo:      repo,
		habitRepo: habitRepo,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithClock pins "now" and the random source for tests.
func NewServiceWithClock(repo GoalRepository, habitRepo habit.HabitRepository, now func() time.Time, rng *rand.Rand) GoalService {
	return &goalService{repo: repo, habitRepo: habitRepo, now: now, rng: rng}
}

func userIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	return uuid.MustParse(claims.UserID), nil
}

func (s *goalService) Generate(ctx context.Context, dto GenerateGoalsDTO) ([]*GoalResponse, error) {
	log := config.WithContext(ctx)
	userID, err := userIDFromContext(ctx, log, "generate goals")
	if err != nil {
		return nil, err
	}

	if len(dto.Habits) == 0 {
		return nil, ErrNoHabits
	}

	goals := GenerateGoals(dto.Habits, userID, s.now())
	if err := s.repo.CreateBatch(goals); err != nil {
		log.WithError(err).Error("Failed to persist generated goals")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"user_id": userID,
		"labels":  len(dto.Habits),
		"goals":   len(goals),
	}).Info("Generated goal batch")

	return toResponses(goals), nil
}

func (s *goalService) GenerateForHabit(ctx context.Context, habitID string) (*GoalResponse, error) {
	log := config.WithContext(ctx)
	userID, err := userIDFromContext(ctx, log, "generate goal for habit")
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(habitID)
	if err != nil {
		return nil, ErrInvalidID
	}

	h, err := s.habitRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, habit.ErrHabitNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrUnauthorized
	}

	s.rngMu.Lock()
	g := GenerateGoalForHabit(h, s.rng, s.now())
	s.rngMu.Unlock()

	if err := s.repo.CreateBatch([]*Goal{g}); err != nil {
		log.WithError(err).Error("Failed to persist generated goal")
		return nil, err
	}

	resp := toResponse(g)
	return &resp, nil
}

func (s *goalService) FindAllByUser(ctx context.Context) ([]*GoalResponse, error) {
	log := config.WithContext(ctx)
	userID, err := userIDFromContext(ctx, log, "list goals")
	if err != nil {
		return nil, err
	}

	goals, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return toResponses(goals), nil
}

func (s *goalService) FindByID(ctx context.Context, id string) (*GoalResponse, error) {
	g, err := s.ownedGoal(ctx, id, "get goal")
	if err != nil {
		return nil, err
	}
	resp := toResponse(g)
	return &resp, nil
}

func (s *goalService) Update(ctx context.Context, id string, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)
	g, err := s.ownedGoal(ctx, id, "update goal")
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		if *dto.Title == "" {
			return nil, ErrInvalidInput
		}
		g.Title = *dto.Title
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.Target != nil {
		if *dto.Target < 1 {
			return nil, ErrInvalidInput
		}
		g.Target = *dto.Target
	}
	if dto.Current != nil {
		if *dto.Current < 0 {
			return nil, ErrInvalidInput
		}
		g.Current = *dto.Current
	}
	if dto.Deadline != nil {
		g.Deadline = *dto.Deadline
	}
	if dto.Priority != nil {
		if !dto.Priority.IsValid() {
			return nil, ErrInvalidInput
		}
		g.Priority = *dto.Priority
	}

	g.UpdatedAt = s.now()
	if err := s.repo.Update(g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	resp := toResponse(g)
	return &resp, nil
}

func (s *goalService) DeleteByID(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	g, err := s.ownedGoal(ctx, id, "delete goal")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(g.ID); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		return err
	}
	return nil
}

func (s *goalService) ownedGoal(ctx context.Context, id, action string) (*Goal, error) {
	log := config.WithContext(ctx)
	userID, err := userIDFromContext(ctx, log, action)
	if err != nil {
		return nil, err
	}

	goalID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	g, err := s.repo.FindByID(goalID)
	if err != nil {
		return nil, err
	}
	if g.UserID != userID {
		return nil, ErrUnauthorized
	}
	return g, nil
}

func toResponse(g *Goal) GoalResponse {
	var progress float64
	if g.Target > 0 {
		progress = float64(g.Current) / float64(g.Target) * 100
	}
	return GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		Description:   g.Description,
		Target:        g.Target,
		Current:       g.Current,
		Unit:          g.Unit,
		Deadline:      g.Deadline,
		Category:      g.Category,
		Priority:      g.Priority,
		AIGenerated:   g.AIGenerated,
		SourceHabitID: g.SourceHabitID,
		Progress:      progress,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func toResponses(goals []*Goal) []*GoalResponse {
	responses := make([]*GoalResponse, 0, len(goals))
	for _, g := range goals {
		resp := toResponse(g)
		responses = append(responses, &resp)
	}
	return responses
}
