package habit

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
	util "github.com/habitloop/habitloop-lambda/internal/utils"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidID         = errors.New("invalid id format")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidPairedLink = errors.New("paired habit must be a bad habit owned by the same user")
)

type HabitService interface {
	CreateHabit(ctx context.Context, dto CreateHabitDTO) (*HabitResponse, error)
	FindAllByUser(ctx context.Context) ([]*HabitResponse, error)
	FindByID(ctx context.Context, id string) (*HabitResponse, error)
	UpdateHabit(ctx context.Context, id string, dto UpdateHabitDTO) (*HabitResponse, error)
	DeleteByID(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, id string, completed bool) (*HabitResponse, error)
	HabitStrength(ctx context.Context, id string) (*StrengthResult, error)
	Suggestions(ctx context.Context, id string) ([]Suggestion, error)
	Dashboard(ctx context.Context) (*DashboardStatsResponse, error)
	ResetDay(ctx context.Context) error
}

type habitService struct {
	repo HabitRepository
	now  func() time.Time
}

func NewService(repo HabitRepository) HabitService {
	return &habitService{repo: repo, now: time.Now}
}

// NewServiceWithClock is used by tests that need a fixed "now".
func NewServiceWithClock(repo HabitRepository, now func() time.Time) HabitService {
	return &habitService{repo: repo, now: now}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	return uuid.MustParse(claims.UserID), nil
}

func parseUUID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid habit ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *habitService) CreateHabit(ctx context.Context, dto CreateHabitDTO) (*HabitResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "create habit")
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(dto.Title)
	if title == "" || dto.TargetDuration < 1 {
		return nil, ErrInvalidInput
	}

	habitType := dto.Type
	if habitType == "" {
		habitType = TypeGood
	}
	if !habitType.IsValid() {
		return nil, ErrInvalidInput
	}

	category := dto.Category
	if category == "" {
		category = ClassifyCategory(title)
	}
	if !category.IsValid() {
		return nil, ErrInvalidInput
	}

	weeklyTarget := dto.WeeklyTarget
	if weeklyTarget <= 0 {
		weeklyTarget = 7
	}

	if dto.BadHabit != nil && !dto.BadHabit.Severity.IsValid() {
		return nil, ErrInvalidInput
	}
	if dto.Reminder != nil && dto.Reminder.Frequency != "" && !dto.Reminder.Frequency.IsValid() {
		return nil, ErrInvalidInput
	}

	now := s.now()
	weekStart := util.NewDateOnly(now).StartOfWeek()
	h := &Habit{
		ID:               uuid.New(),
		UserID:           userID,
		Title:            title,
		Description:      dto.Description,
		Category:         category,
		Type:             habitType,
		TargetDuration:   dto.TargetDuration,
		WeeklyTarget:     weeklyTarget,
		WeekStart:        &weekStart,
		PairedBadHabitID: dto.PairedBadHabitID,
		BadHabit:         datatypes.NewJSONType(dto.BadHabit),
		Reminder:         datatypes.NewJSONType(dto.Reminder),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if habitType != TypeBad {
		h.BadHabit = datatypes.NewJSONType[*BadHabitDetails](nil)
	}

	if err := s.validatePairedLink(userID, h.PairedBadHabitID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(h); err != nil {
		log.WithError(err).Error("Failed to create habit")
		return nil, err
	}

	return s.toResponse(h), nil
}

// validatePairedLink verifies the weak reference from a replacement
// habit to the bad habit it replaces.
func (s *habitService) validatePairedLink(userID uuid.UUID, pairedID *uuid.UUID) error {
	if pairedID == nil {
		return nil
	}
	paired, err := s.repo.FindByID(*pairedID)
	if err != nil {
		if errors.Is(err, ErrHabitNotFound) {
			return ErrInvalidPairedLink
		}
		return err
	}
	if paired.UserID != userID || paired.Type != TypeBad {
		return ErrInvalidPairedLink
	}
	return nil
}

func (s *habitService) FindAllByUser(ctx context.Context) ([]*HabitResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "list habits")
	if err != nil {
		return nil, err
	}

	habits, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
		return nil, err
	}

	now := s.now()
	responses := make([]*HabitResponse, 0, len(habits))
	for _, h := range habits {
		NormalizeWindows(h, now)
		responses = append(responses, s.toResponse(h))
	}
	return responses, nil
}

func (s *habitService) FindByID(ctx context.Context, id string) (*HabitResponse, error) {
	h, err := s.ownedHabit(ctx, id, "get habit")
	if err != nil {
		return nil, err
	}
	NormalizeWindows(h, s.now())
	return s.toResponse(h), nil
}

func (s *habitService) UpdateHabit(ctx context.Context, id string, dto UpdateHabitDTO) (*HabitResponse, error) {
	log := config.WithContext(ctx)
	h, err := s.ownedHabit(ctx, id, "update habit")
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		title := strings.TrimSpace(*dto.Title)
		if title == "" {
			return nil, ErrInvalidInput
		}
		h.Title = title
	}
	if dto.Description != nil {
		h.Description = *dto.Description
	}
	if dto.Category != nil {
		if !dto.Category.IsValid() {
			return nil, ErrInvalidInput
		}
		h.Category = *dto.Category
	}
	if dto.TargetDuration != nil {
		if *dto.TargetDuration < 1 {
			return nil, ErrInvalidInput
		}
		h.TargetDuration = *dto.TargetDuration
	}
	if dto.WeeklyTarget != nil {
		if *dto.WeeklyTarget < 1 {
			return nil, ErrInvalidInput
		}
		h.WeeklyTarget = *dto.WeeklyTarget
	}
	if dto.BadHabit != nil {
		if h.Type != TypeBad || !dto.BadHabit.Severity.IsValid() {
			return nil, ErrInvalidInput
		}
		h.BadHabit = datatypes.NewJSONType(dto.BadHabit)
	}
	if dto.Reminder != nil {
		if dto.Reminder.Frequency != "" && !dto.Reminder.Frequency.IsValid() {
			return nil, ErrInvalidInput
		}
		h.Reminder = datatypes.NewJSONType(dto.Reminder)
	}
	if dto.PairedBadHabitID != nil {
		if err := s.validatePairedLink(h.UserID, dto.PairedBadHabitID); err != nil {
			return nil, err
		}
		h.PairedBadHabitID = dto.PairedBadHabitID
	}

	// Target duration may have dropped below the current streak; the
	// established marker is set here with the same rule the toggle uses.
	markEstablished(h, s.now())
	h.UpdatedAt = s.now()

	if err := s.repo.Update(h); err != nil {
		log.WithError(err).Error("Failed to update habit")
		return nil, err
	}

	return s.toResponse(h), nil
}

func (s *habitService) DeleteByID(ctx context.Context, id string) error {
	log := config.WithContext(ctx)
	h, err := s.ownedHabit(ctx, id, "delete habit")
	if err != nil {
		return err
	}

	if err := s.repo.Delete(h.ID); err != nil {
		log.WithError(err).Error("Failed to delete habit")
		return err
	}
	return nil
}

func (s *habitService) ToggleCompletion(ctx context.Context, id string, completed bool) (*HabitResponse, error) {
	log := config.WithContext(ctx)
	h, err := s.ownedHabit(ctx, id, "toggle habit completion")
	if err != nil {
		return nil, err
	}

	ApplyToggle(h, completed, s.now())
	h.UpdatedAt = s.now()

	if err := s.repo.Update(h); err != nil {
		log.WithError(err).Error("Failed to persist habit toggle")
		return nil, err
	}

	return s.toResponse(h), nil
}

func (s *habitService) HabitStrength(ctx context.Context, id string) (*StrengthResult, error) {
	h, err := s.ownedHabit(ctx, id, "compute habit strength")
	if err != nil {
		return nil, err
	}
	NormalizeWindows(h, s.now())
	result := Strength(h)
	return &result, nil
}

func (s *habitService) Suggestions(ctx context.Context, id string) ([]Suggestion, error) {
	h, err := s.ownedHabit(ctx, id, "get habit suggestions")
	if err != nil {
		return nil, err
	}
	NormalizeWindows(h, s.now())
	return Suggest(h), nil
}

func (s *habitService) Dashboard(ctx context.Context) (*DashboardStatsResponse, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "load dashboard")
	if err != nil {
		return nil, err
	}

	habits, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load habits for dashboard")
		return nil, err
	}

	now := s.now()
	resp := &DashboardStatsResponse{}
	var strengthSum, weekCompleted, weekTarget int

	for _, h := range habits {
		NormalizeWindows(h, now)

		resp.Stats.Total++
		switch h.Type {
		case TypeBad:
			resp.Stats.BadHabits++
		default:
			resp.Stats.GoodHabits++
		}
		if h.CompletedToday {
			resp.Stats.CompletedToday++
		}
		if h.IsCompleted() {
			resp.Stats.Established++
		}

		switch h.Category {
		case CategoryHealth:
			resp.Categories.Health++
		case CategoryProductivity:
			resp.Categories.Productivity++
		case CategoryMindfulness:
			resp.Categories.Mindfulness++
		case CategorySocial:
			resp.Categories.Social++
		}

		if h.BestStreak > resp.BestStreak {
			resp.BestStreak = h.BestStreak
		}

		strengthSum += Strength(h).Score
		weekCompleted += h.CurrentWeekCompleted
		weekTarget += h.WeeklyTarget
	}

	if resp.Stats.Total > 0 {
		resp.AverageStrength = int(math.Round(float64(strengthSum) / float64(resp.Stats.Total)))
	}
	if weekTarget > 0 {
		resp.WeeklyProgress = float64(weekCompleted) / float64(weekTarget) * 100
	}

	return resp, nil
}

// ResetDay applies the missed-day event to every habit of the current
// user. Meant to be invoked by an external scheduler (or the client on
// first load of a new day); the toggle path never resets streaks.
func (s *habitService) ResetDay(ctx context.Context) error {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, "reset day")
	if err != nil {
		return err
	}

	habits, err := s.repo.FindAllByUserID(userID)
	if err != nil {
		return err
	}

	now := s.now()
	for _, h := range habits {
		before := *h
		ApplyMissedDay(h, now)
		if before.Streak == h.Streak && before.CompletedToday == h.CompletedToday &&
			before.CurrentWeekCompleted == h.CurrentWeekCompleted &&
			sameWeekStart(before.WeekStart, h.WeekStart) {
			continue
		}
		h.UpdatedAt = now
		if err := s.repo.Update(h); err != nil {
			log.WithError(err).WithField("habit_id", h.ID).Error("Failed to persist day reset")
			return err
		}
	}
	return nil
}

func sameWeekStart(a, b *util.DateOnly) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (s *habitService) ownedHabit(ctx context.Context, id, action string) (*Habit, error) {
	log := config.WithContext(ctx)
	userID, err := getUserIDFromContext(ctx, log, action)
	if err != nil {
		return nil, err
	}

	habitID, err := parseUUID(log, id)
	if err != nil {
		return nil, err
	}

	h, err := s.repo.FindByID(habitID)
	if err != nil {
		return nil, err
	}
	if h.UserID != userID {
		return nil, ErrUnauthorized
	}
	return h, nil
}

func (s *habitService) toResponse(h *Habit) *HabitResponse {
	return &HabitResponse{
		ID:                   h.ID,
		Title:                h.Title,
		Description:          h.Description,
		Category:             h.Category,
		Type:                 h.Type,
		Streak:               h.Streak,
		BestStreak:           h.BestStreak,
		TargetDuration:       h.TargetDuration,
		WeeklyTarget:         h.WeeklyTarget,
		CurrentWeekCompleted: h.CurrentWeekCompleted,
		CompletedToday:       h.CompletedToday,
		LastCompletedOn:      h.LastCompletedOn,
		IsCompleted:          h.IsCompleted(),
		CompletionRate:       h.CompletionRate(),
		EstablishedAt:        h.EstablishedAt,
		PairedBadHabitID:     h.PairedBadHabitID,
		BadHabit:             h.BadHabitDetails(),
		Reminder:             h.ReminderSchedule(),
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}
