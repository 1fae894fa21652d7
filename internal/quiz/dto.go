package quiz

import (
	"time"

	"github.com/google/uuid"
)

type CreateQuizDTO struct {
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	CourseID    string        `json:"course_id"`
	TimeLimit   *int          `json:"time_limit"`
	DueAt       *time.Time    `json:"due_at"`
	Questions   []QuestionDTO `json:"questions"`
}

// QuestionDTO order is implicit: slice position becomes the question's
// zero-based order_index.
type QuestionDTO struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Points  int          `json:"points"`
	Options []OptionDTO  `json:"options"`
}

type OptionDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

type AnswerDTO struct {
	QuestionID       uuid.UUID  `json:"question_id"`
	SelectedOptionID *uuid.UUID `json:"selected_option_id,omitempty"`
	TextAnswer       *string    `json:"text_answer,omitempty"`
}

type SubmitQuizDTO struct {
	Answers []AnswerDTO `json:"answers"`
}

// TakeQuizView is the projection served to students for a take-session.
// It carries the same questions in the same order but strips is_correct
// from every option, so the stored rows are never mutated or leaked.
type TakeQuizView struct {
	ID          uuid.UUID      `json:"id"`
	CourseID    uuid.UUID      `json:"course_id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	TimeLimit   *int           `json:"time_limit,omitempty"`
	DueAt       *time.Time     `json:"due_at,omitempty"`
	IsActive    bool           `json:"is_active"`
	Questions   []TakeQuestion `json:"questions"`
}

type TakeQuestion struct {
	ID         uuid.UUID    `json:"id"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Points     int          `json:"points"`
	OrderIndex int          `json:"order_index"`
	Options    []TakeOption `json:"options"`
}

type TakeOption struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
}

type StudentSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	UniversityID string    `json:"university_id"`
	Email        string    `json:"email"`
}

type SubmissionResult struct {
	ID          uuid.UUID      `json:"id"`
	QuizID      uuid.UUID      `json:"quiz_id"`
	Score       int            `json:"score"`
	SubmittedAt time.Time      `json:"submitted_at"`
	Student     StudentSummary `json:"student"`
}

type QuizStats struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Highest int     `json:"highest"`
	Lowest  int     `json:"lowest"`
}

type QuizResultsResponse struct {
	Submissions []SubmissionResult `json:"submissions"`
	Stats       QuizStats          `json:"stats"`
}
