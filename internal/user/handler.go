package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(service UserService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "name, email and a password of at least 8 characters are required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to register user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	auth.SetTokenCookies(w, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	config.JSON(w, http.StatusCreated, resp.User)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to log user in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetTokenCookies(w, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	config.JSON(w, http.StatusOK, resp.User)
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GoogleLoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.Code == "" {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GoogleLogin(r.Context(), dto.Code)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "invalid authorization code", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Google login failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	auth.SetTokenCookies(w, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	config.JSON(w, http.StatusOK, resp.User)
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil || cookie.Value == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Refresh(r.Context(), cookie.Value)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	auth.SetTokenCookies(w, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
	config.JSON(w, http.StatusOK, resp.User)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.GetByID(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Update(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to update user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
