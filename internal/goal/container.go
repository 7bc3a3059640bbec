package goal

import (
	"gorm.io/gorm"

	"github.com/habitloop/habitloop-lambda/internal/habit"
)

type GoalContainer struct {
	Handler *Handler
	Service GoalService
}

func NewGoalContainer(db *gorm.DB, habitRepo habit.HabitRepository) *GoalContainer {
	repo := NewRepository(db)
	service := NewService(repo, habitRepo)
	handler := NewHandler(service)

	return &GoalContainer{
		Handler: handler,
		Service: service,
	}
}
