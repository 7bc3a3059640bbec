package insights

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/habits/{habitId}/motivation", h.Motivation)
	r.Get("/habits/{habitId}/schedule", h.Schedule)

	return r
}
