package habit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/dashboard", h.Dashboard)
	r.Post("/reset-day", h.ResetDay)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/toggle", h.Toggle)
	r.Get("/{id}/strength", h.Strength)
	r.Get("/{id}/suggestions", h.Suggestions)

	return r
}
