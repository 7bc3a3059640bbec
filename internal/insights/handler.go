package insights

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop-lambda/internal/config"
	"github.com/habitloop/habitloop-lambda/internal/habit"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, habit.ErrHabitNotFound):
		http.Error(w, "habit not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Motivation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.Motivation(r.Context(), chi.URLParam(r, "habitId"))
	if err != nil {
		log.WithError(err).Error("Failed to generate motivational message")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.Schedule(r.Context(), chi.URLParam(r, "habitId"))
	if err != nil {
		log.WithError(err).Error("Failed to suggest schedule")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
