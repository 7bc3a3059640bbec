package container

import (
	"context"
	"log"
	"os"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
	"github.com/habitloop/habitloop-lambda/internal/goal"
	"github.com/habitloop/habitloop-lambda/internal/habit"
	"github.com/habitloop/habitloop-lambda/internal/insights"
	"github.com/habitloop/habitloop-lambda/internal/user"
)

type Container struct {
	UserContainer     *user.UserContainer
	HabitContainer    *habit.HabitContainer
	GoalContainer     *goal.GoalContainer
	InsightsContainer *insights.InsightsContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn,
		&user.User{}, &habit.Habit{}, &goal.Goal{},
	); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	habitContainer := habit.NewHabitContainer(config.DB)
	goalContainer := goal.NewGoalContainer(config.DB, habitContainer.Repo)
	insightsContainer := insights.NewInsightsContainer(habitContainer.Repo)

	return &Container{
		UserContainer:     userContainer,
		HabitContainer:    habitContainer,
		GoalContainer:     goalContainer,
		InsightsContainer: insightsContainer,
	}
}
