package settings

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByProfessorID(professorID uuid.UUID) (*ProfessorSettings, error)
	Create(s *ProfessorSettings) error
	Update(s *ProfessorSettings) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByProfessorID(professorID uuid.UUID) (*ProfessorSettings, error) {
	var s ProfessorSettings
	if err := r.db.First(&s, "professor_id = ?", professorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(s *ProfessorSettings) error {
	return r.db.Create(s).Error
}

func (r *repository) Update(s *ProfessorSettings) error {
	return r.db.Save(s).Error
}
