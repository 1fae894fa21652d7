package course

import (
	"context"
	"errors"

	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/google/uuid"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrCodeRequired   = errors.New("course code is required")
	ErrNameRequired   = errors.New("course name is required")
	ErrUnauthorized   = errors.New("unauthorized")
)

type Service interface {
	Create(ctx context.Context, professorID uuid.UUID, dto CreateCourseDTO) (*CourseResponse, error)
	List(ctx context.Context) ([]CourseResponse, error)
	ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]CourseResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CourseResponse, error)
	Delete(ctx context.Context, id uuid.UUID, professorID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, professorID uuid.UUID, dto CreateCourseDTO) (*CourseResponse, error) {
	log := config.WithContext(ctx)

	if dto.Code == "" {
		return nil, ErrCodeRequired
	}
	if dto.Name == "" {
		return nil, ErrNameRequired
	}

	c := Course{
		ID:          uuid.New(),
		Code:        dto.Code,
		Name:        dto.Name,
		ProfessorID: professorID,
	}
	if err := s.repo.Create(&c); err != nil {
		log.WithError(err).Error("Failed to create course")
		return nil, err
	}

	log.WithField("course_id", c.ID.String()).Info("Course created")
	return toResponse(&c), nil
}

func (s *service) List(ctx context.Context) ([]CourseResponse, error) {
	courses, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return toResponses(courses), nil
}

func (s *service) ListByProfessor(ctx context.Context, professorID uuid.UUID) ([]CourseResponse, error) {
	courses, err := s.repo.FindAllByProfessorID(professorID)
	if err != nil {
		return nil, err
	}
	return toResponses(courses), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CourseResponse, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return toResponse(c), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, professorID uuid.UUID) error {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrCourseNotFound
	}
	if c.ProfessorID != professorID {
		return ErrUnauthorized
	}
	return s.repo.Delete(id)
}

func toResponse(c *Course) *CourseResponse {
	return &CourseResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		ProfessorID: c.ProfessorID,
		CreatedAt:   c.CreatedAt,
	}
}

func toResponses(courses []Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, *toResponse(&courses[i]))
	}
	return responses
}
