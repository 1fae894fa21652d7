package quiz

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	CreateQuizAggregate(q *Quiz) error
	GetByID(id uuid.UUID, includeQuestions bool) (*Quiz, error)
	ListByCourse(courseID uuid.UUID) ([]*Quiz, error)
	Delete(id uuid.UUID) error

	CreateSubmission(sub *Submission) error
	ListSubmissionsByQuiz(quizID uuid.UUID) ([]*Submission, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

// CreateQuizAggregate persists the quiz, its questions and their options
// in one transaction. A failure anywhere rolls the whole aggregate back,
// so readers never see a partial quiz.
func (r *quizRepository) CreateQuizAggregate(q *Quiz) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Questions").Create(q).Error; err != nil {
			return err
		}

		for i := range q.Questions {
			question := &q.Questions[i]
			question.QuizID = q.ID

			if err := tx.Omit("Options").Create(question).Error; err != nil {
				return err
			}

			if len(question.Options) > 0 {
				for j := range question.Options {
					question.Options[j].QuestionID = question.ID
				}
				if err := tx.Create(&question.Options).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAggregateWrite, err)
	}
	return nil
}

func (r *quizRepository) GetByID(id uuid.UUID, includeQuestions bool) (*Quiz, error) {
	query := r.db
	if includeQuestions {
		query = query.
			Preload("Questions", func(db *gorm.DB) *gorm.DB {
				return db.Order("order_index ASC")
			}).
			Preload("Questions.Options")
	}

	var quiz Quiz
	if err := query.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) ListByCourse(courseID uuid.UUID) ([]*Quiz, error) {
	var quizzes []*Quiz
	err := r.db.Model(&Quiz{}).
		Select(`quizzes.*,
			(SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id) AS question_count,
			(SELECT COUNT(*) FROM submissions WHERE submissions.quiz_id = quizzes.id) AS submission_count`).
		Where("course_id = ?", courseID).
		Order("created_at DESC").
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

// Delete removes the quiz and everything hanging off it. Children go
// first so the cascade also holds on stores that do not enforce the
// foreign key constraints.
func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id IN (?)",
			tx.Model(&Submission{}).Select("id").Where("quiz_id = ?", id),
		).Delete(&Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id IN (?)",
			tx.Model(&Question{}).Select("id").Where("quiz_id = ?", id),
		).Delete(&Option{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}

func (r *quizRepository) CreateSubmission(sub *Submission) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Answers", "Student").Create(sub).Error; err != nil {
			return err
		}
		if len(sub.Answers) > 0 {
			for i := range sub.Answers {
				sub.Answers[i].SubmissionID = sub.ID
			}
			if err := tx.Create(&sub.Answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAggregateWrite, err)
	}
	return nil
}

func (r *quizRepository) ListSubmissionsByQuiz(quizID uuid.UUID) ([]*Submission, error) {
	var submissions []*Submission
	err := r.db.
		Preload("Student").
		Where("quiz_id = ?", quizID).
		Order("score DESC, submitted_at ASC").
		Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
