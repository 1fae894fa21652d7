package course

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code        string    `gorm:"type:text;not null;uniqueIndex" json:"code"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	ProfessorID uuid.UUID `gorm:"type:uuid;not null;index" json:"professor_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
