package goal

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/habit"
)

type stubGoalRepo struct {
	mu      sync.Mutex
	created []*Goal
}

func (r *stubGoalRepo) CreateBatch(goals []*Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, goals...)
	return nil
}

func (r *stubGoalRepo) FindAllByUserID(userID uuid.UUID) ([]*Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Goal
	for _, g := range r.created {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGoalRepo) FindByID(id uuid.UUID) (*Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, g := range r.created {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, ErrGoalNotFound
}

func (r *stubGoalRepo) Update(g *Goal) error { return nil }

func (r *stubGoalRepo) Delete(id uuid.UUID) error { return nil }

type stubHabitRepo struct {
	habits map[uuid.UUID]*habit.Habit
}

func (r *stubHabitRepo) Create(h *habit.Habit) error { return nil }

func (r *stubHabitRepo) FindAllByUserID(userID uuid.UUID) ([]*habit.Habit, error) {
	return nil, nil
}

func (r *stubHabitRepo) FindByID(id uuid.UUID) (*habit.Habit, error) {
	if h, ok := r.habits[id]; ok {
		return h, nil
	}
	return nil, habit.ErrHabitNotFound
}

func (r *stubHabitRepo) Update(h *habit.Habit) error { return nil }

func (r *stubHabitRepo) Delete(id uuid.UUID) error { return nil }

func goalTestService(goals *stubGoalRepo, habits *stubHabitRepo) GoalService {
	now := func() time.Time { return genTime }
	return NewServiceWithClock(goals, habits, now, rand.New(rand.NewSource(1)))
}

func goalAuthedContext(userID uuid.UUID) context.Context {
	return auth.WithClaims(context.Background(), &auth.Claims{UserID: userID.String(), Role: "user"})
}

func TestGenerateRequiresLabels(t *testing.T) {
	svc := goalTestService(&stubGoalRepo{}, &stubHabitRepo{})

	_, err := svc.Generate(goalAuthedContext(uuid.New()), GenerateGoalsDTO{})
	assert.ErrorIs(t, err, ErrNoHabits)
}

func TestGenerateForHabitOwnership(t *testing.T) {
	owner := uuid.New()
	h := &habit.Habit{ID: uuid.New(), UserID: owner, Category: habit.CategoryHealth}
	habits := &stubHabitRepo{habits: map[uuid.UUID]*habit.Habit{h.ID: h}}
	svc := goalTestService(&stubGoalRepo{}, habits)

	_, err := svc.GenerateForHabit(goalAuthedContext(uuid.New()), h.ID.String())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// One service instance serves all requests; concurrent single-habit
// generation shares the random source and must be safe. Run with the
// race detector.
func TestGenerateForHabitConcurrent(t *testing.T) {
	userID := uuid.New()
	h := &habit.Habit{ID: uuid.New(), UserID: userID, Category: habit.CategoryMindfulness}
	goals := &stubGoalRepo{}
	habits := &stubHabitRepo{habits: map[uuid.UUID]*habit.Habit{h.ID: h}}
	svc := goalTestService(goals, habits)

	ctx := goalAuthedContext(userID)
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if _, err := svc.GenerateForHabit(ctx, h.ID.String()); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Len(t, goals.created, 200)
	for _, g := range goals.created {
		assert.Equal(t, BucketMindfulness, g.Category)
		require.NotNil(t, g.SourceHabitID)
		assert.Equal(t, h.ID, *g.SourceHabitID)
	}
}
