package insights

import "github.com/habitloop/habitloop-lambda/internal/habit"

type InsightsContainer struct {
	Handler *Handler
	Service Service
}

func NewInsightsContainer(habitRepo habit.HabitRepository) *InsightsContainer {
	provider := NewRuleProvider()
	service := NewService(provider, habitRepo)
	handler := NewHandler(service)

	return &InsightsContainer{
		Handler: handler,
		Service: service,
	}
}
