package habit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop-lambda/internal/config"
)

type Handler struct {
	service HabitService
}

func NewHandler(service HabitService) *Handler {
	return &Handler{service: service}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, ErrHabitNotFound):
		http.Error(w, "habit not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid id", http.StatusBadRequest)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPairedLink):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.CreateHabit(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create habit")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	responses, err := h.service.FindAllByUser(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list habits")
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

	var dto UpdateHabitDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateHabit(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		log.WithError(err).Error("Failed to update habit")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.DeleteByID(r.Context(), chi.URLParam(r, "id")); err != nil {
		log.WithError(err).Error("Failed to delete habit")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ToggleDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Completed == nil {
		http.Error(w, "body must contain a boolean \"completed\" field", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ToggleCompletion(r.Context(), chi.URLParam(r, "id"), *dto.Completed)
	if err != nil {
		log.WithError(err).Error("Failed to toggle habit completion")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Strength(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.HabitStrength(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Suggestions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resp, err := h.service.Dashboard(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to build dashboard stats")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ResetDay(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.ResetDay(r.Context()); err != nil {
		log.WithError(err).Error("Failed to reset day")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
