package quiz

import (
	"time"

	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/google/uuid"
)

type Quiz struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"course_id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	TimeLimit   *int       `json:"time_limit,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`

	// Count annotations filled by the course listing query only.
	QuestionCount   *int64 `gorm:"->;-:migration" json:"question_count,omitempty"`
	SubmissionCount *int64 `gorm:"->;-:migration" json:"submission_count,omitempty"`
}

type Question struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID     uuid.UUID    `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text       string       `gorm:"type:text;not null" json:"text"`
	Type       QuestionType `gorm:"type:text;not null" json:"type"`
	Points     int          `gorm:"not null;default:1" json:"points"`
	OrderIndex int          `gorm:"not null" json:"order_index"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
}

type Submission struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID      uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`

	Answers []Answer   `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
	Student *user.User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

type Answer struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"submission_id"`
	QuestionID       uuid.UUID  `gorm:"type:uuid;not null" json:"question_id"`
	SelectedOptionID *uuid.UUID `gorm:"type:uuid" json:"selected_option_id,omitempty"`
	TextAnswer       *string    `gorm:"type:text" json:"text_answer,omitempty"`
	IsCorrect        bool       `gorm:"not null;default:false" json:"is_correct"`
}
