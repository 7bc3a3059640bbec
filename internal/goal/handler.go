package goal

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop-lambda/internal/config"
)

type Handler struct {
	service GoalService
}

func NewHandler(service GoalService) *Handler {
	return &Handler{service: service}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoHabits):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateGoalsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	responses, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to generate goals")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, responses)
}

func (h *Handler) GenerateForHabit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.GenerateForHabit(r.Context(), chi.URLParam(r, "habitId"))
	if err != nil {
		log.WithError(err).Error("Failed to generate goal for habit")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.FindAllByUser(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list goals")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateGoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Failed to update goal")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Failed to delete goal")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
