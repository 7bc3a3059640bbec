package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/goal"
	"github.com/habitloop/habitloop-lambda/internal/habit"
	"github.com/habitloop/habitloop-lambda/internal/insights"
	"github.com/habitloop/habitloop-lambda/internal/middlewares"
	"github.com/habitloop/habitloop-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	HabitHandler    *habit.Handler
	GoalHandler     *goal.Handler
	InsightsHandler *insights.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/habits", habit.Routes(cfg.HabitHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/insights", insights.Routes(cfg.InsightsHandler))
	})

	return r
}
