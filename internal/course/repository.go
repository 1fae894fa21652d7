package course

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Course) error
	FindAll() ([]Course, error)
	FindAllByProfessorID(professorID uuid.UUID) ([]Course, error)
	FindByID(id uuid.UUID) (*Course, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(c *Course) error {
	return r.db.Create(c).Error
}

func (r *repository) FindAll() ([]Course, error) {
	var courses []Course
	if err := r.db.Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *repository) FindAllByProfessorID(professorID uuid.UUID) ([]Course, error) {
	var courses []Course
	if err := r.db.Where("professor_id = ?", professorID).Order("created_at DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *repository) FindByID(id uuid.UUID) (*Course, error) {
	var c Course
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Course{}, "id = ?", id).Error
}
