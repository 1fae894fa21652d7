package user

import (
	"context"
	"errors"
	"time"

	"github.com/attendly-app/attendly-lambda/internal/auth"
	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

const tokenTTL = time.Hour * 12

type UserService interface {
	Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error)
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Login(ctx context.Context, dto LoginDTO) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(u.ID.String(), string(u.Role), tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign access token")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("User logged in")
	return &LoginResponse{Token: token, User: *toResponse(u)}, nil
}

func (s *userService) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	if !dto.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Name:         dto.Name,
		Email:        dto.Email,
		UniversityID: dto.UniversityID,
		Role:         dto.Role,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	return toResponse(u), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	u, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		UniversityID: u.UniversityID,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
	}
}
