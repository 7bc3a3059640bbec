package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/habitloop/habitloop-lambda/internal/auth"
	"github.com/habitloop/habitloop-lambda/internal/config"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error)
	GoogleLogin(ctx context.Context, code string) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*UserResponse, error)
}

type service struct {
	repo   UserRepository
	google GoogleProvider
}

func NewService(repo UserRepository, google GoogleProvider) UserService {
	return &service{repo: repo, google: google}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if email == "" || len(dto.Password) < 8 || strings.TrimSpace(dto.Name) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(dto.Name),
		Email:        email,
		PasswordHash: string(hash),
		Provider:     "local",
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	return s.authResponse(u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if u.PasswordHash == "" {
		// Google-only account, no password to check.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*AuthResponse, error) {
	log := config.WithContext(ctx)

	info, refreshToken, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Google code exchange failed")
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(info.Email)
	u, err := s.repo.FindByEmail(email)
	switch {
	case errors.Is(err, ErrUserNotFound):
		u = &User{
			ID:       uuid.New(),
			Name:     info.Name,
			Email:    email,
			Picture:  info.Picture,
			Provider: "google",
		}
		if err := s.storeRefreshToken(u, refreshToken); err != nil {
			return nil, err
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create google user")
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if info.Picture != "" {
			u.Picture = info.Picture
		}
		if err := s.storeRefreshToken(u, refreshToken); err != nil {
			return nil, err
		}
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
	}

	return s.authResponse(u)
}

func (s *service) storeRefreshToken(u *User, token string) error {
	if token == "" {
		return nil
	}
	encrypted, err := config.Encrypt(token)
	if err != nil {
		return err
	}
	u.GoogleRefreshToken = encrypted
	return nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(u)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(u)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateUserDTO) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		u.Name = strings.TrimSpace(*dto.Name)
	}
	if dto.Picture != nil {
		u.Picture = *dto.Picture
	}
	if dto.OnboardingDone != nil {
		u.OnboardingDone = *dto.OnboardingDone
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	resp := toResponse(u)
	return &resp, nil
}

func (s *service) authResponse(u *User) (*AuthResponse, error) {
	access, err := auth.GenerateJWT(u.ID.String(), "user", auth.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), "user", auth.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:   toResponse(u),
		Tokens: TokenPair{AccessToken: access, RefreshToken: refresh},
	}, nil
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Picture:        u.Picture,
		Provider:       u.Provider,
		OnboardingDone: u.OnboardingDone,
		CreatedAt:      u.CreatedAt,
	}
}
