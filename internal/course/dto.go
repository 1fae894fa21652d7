package course

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type CourseResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	ProfessorID uuid.UUID `json:"professor_id"`
	CreatedAt   time.Time `json:"created_at"`
}
