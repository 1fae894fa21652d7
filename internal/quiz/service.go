package quiz

import (
	"context"
	"math"

	"github.com/attendly-app/attendly-lambda/internal/config"
	"github.com/google/uuid"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	GetQuizzesByCourse(ctx context.Context, courseID string) ([]*Quiz, error)
	GetQuizByID(ctx context.Context, quizID string) (*Quiz, error)
	GetQuizForTake(ctx context.Context, quizID string) (*TakeQuizView, error)
	DeleteQuiz(ctx context.Context, quizID string) error
	SubmitQuiz(ctx context.Context, quizID string, studentID uuid.UUID, answers []AnswerDTO) (*Submission, error)
	GetQuizResults(ctx context.Context, quizID string) (*QuizResultsResponse, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	if dto.CourseID == "" {
		return nil, &ValidationError{Field: "course_id", Reason: "required"}
	}
	courseID, err := uuid.Parse(dto.CourseID)
	if err != nil {
		return nil, &ValidationError{Field: "course_id", Reason: "must be a valid uuid"}
	}

	q := &Quiz{
		ID:          uuid.New(),
		CourseID:    courseID,
		Title:       dto.Title,
		Description: dto.Description,
		TimeLimit:   dto.TimeLimit,
		DueAt:       dto.DueAt,
		IsActive:    true,
	}

	for i, questionDTO := range dto.Questions {
		question, err := buildQuestion(q.ID, i, questionDTO)
		if err != nil {
			return nil, err
		}
		q.Questions = append(q.Questions, *question)
	}

	if err := s.repo.CreateQuizAggregate(q); err != nil {
		log.WithError(err).Error("Failed to persist quiz aggregate")
		return nil, err
	}

	log.WithField("quiz_id", q.ID.String()).Info("Quiz created")
	return q, nil
}

func buildQuestion(quizID uuid.UUID, index int, dto QuestionDTO) (*Question, error) {
	if dto.Text == "" {
		return nil, &ValidationError{Field: "questions", Reason: "question text is required"}
	}
	if !dto.Type.IsValid() {
		return nil, &ValidationError{Field: "questions", Reason: "unknown question type"}
	}
	if dto.Points < 0 {
		return nil, &ValidationError{Field: "questions", Reason: "points must be at least 1"}
	}
	points := dto.Points
	if points == 0 {
		points = 1
	}

	if dto.Type.AutoGraded() {
		correct := 0
		for _, opt := range dto.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return nil, &ValidationError{Field: "questions", Reason: "auto-graded questions need exactly one correct option"}
		}
		if dto.Type == TRUE_FALSE && len(dto.Options) != 2 {
			return nil, &ValidationError{Field: "questions", Reason: "true/false questions need exactly two options"}
		}
	}

	question := &Question{
		ID:         uuid.New(),
		QuizID:     quizID,
		Text:       dto.Text,
		Type:       dto.Type,
		Points:     points,
		OrderIndex: index,
	}
	for _, opt := range dto.Options {
		question.Options = append(question.Options, Option{
			ID:         uuid.New(),
			QuestionID: question.ID,
			Text:       opt.Text,
			IsCorrect:  opt.IsCorrect,
		})
	}
	return question, nil
}

func (s *quizService) GetQuizzesByCourse(ctx context.Context, courseID string) ([]*Quiz, error) {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(courseID)
	if err != nil {
		return nil, err
	}

	quizzes, err := s.repo.ListByCourse(parsed)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes for course")
		return nil, err
	}
	return quizzes, nil
}

func (s *quizService) GetQuizByID(ctx context.Context, quizID string) (*Quiz, error) {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(quizID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.repo.GetByID(parsed, true)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}
	return quiz, nil
}

// GetQuizForTake serves the same quiz through the student projection:
// option correctness never leaves the server during a take-session.
func (s *quizService) GetQuizForTake(ctx context.Context, quizID string) (*TakeQuizView, error) {
	quiz, err := s.GetQuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	view := &TakeQuizView{
		ID:          quiz.ID,
		CourseID:    quiz.CourseID,
		Title:       quiz.Title,
		Description: quiz.Description,
		TimeLimit:   quiz.TimeLimit,
		DueAt:       quiz.DueAt,
		IsActive:    quiz.IsActive,
		Questions:   make([]TakeQuestion, 0, len(quiz.Questions)),
	}
	for _, question := range quiz.Questions {
		takeQuestion := TakeQuestion{
			ID:         question.ID,
			Text:       question.Text,
			Type:       question.Type,
			Points:     question.Points,
			OrderIndex: question.OrderIndex,
			Options:    make([]TakeOption, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			takeQuestion.Options = append(takeQuestion.Options, TakeOption{
				ID:   option.ID,
				Text: option.Text,
			})
		}
		view.Questions = append(view.Questions, takeQuestion)
	}
	return view, nil
}

func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(quizID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(parsed, false)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrQuizNotFound
	}

	if err := s.repo.Delete(parsed); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		return err
	}

	log.WithField("quiz_id", quizID).Info("Quiz deleted")
	return nil
}

func (s *quizService) SubmitQuiz(ctx context.Context, quizID string, studentID uuid.UUID, answers []AnswerDTO) (*Submission, error) {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(quizID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.repo.GetByID(parsed, true)
	if err != nil {
		log.WithError(err).Error("Failed to load quiz for submission")
		return nil, err
	}
	if quiz == nil {
		return nil, ErrQuizNotFound
	}

	result := Score(quiz.Questions, answers)

	sub := &Submission{
		ID:        uuid.New(),
		QuizID:    quiz.ID,
		StudentID: studentID,
		Score:     result.TotalScore,
	}
	for _, scored := range result.Answers {
		sub.Answers = append(sub.Answers, Answer{
			ID:               uuid.New(),
			SubmissionID:     sub.ID,
			QuestionID:       scored.QuestionID,
			SelectedOptionID: scored.SelectedOptionID,
			TextAnswer:       scored.TextAnswer,
			IsCorrect:        scored.IsCorrect,
		})
	}

	if err := s.repo.CreateSubmission(sub); err != nil {
		log.WithError(err).Error("Failed to persist submission")
		return nil, err
	}

	log.WithField("submission_id", sub.ID.String()).Info("Quiz submitted")
	return sub, nil
}

func (s *quizService) GetQuizResults(ctx context.Context, quizID string) (*QuizResultsResponse, error) {
	log := config.WithContext(ctx)

	parsed, err := parseUUID(quizID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.repo.ListSubmissionsByQuiz(parsed)
	if err != nil {
		log.WithError(err).Error("Failed to list submissions")
		return nil, err
	}

	response := &QuizResultsResponse{
		Submissions: make([]SubmissionResult, 0, len(submissions)),
	}

	total := 0
	for i, sub := range submissions {
		result := SubmissionResult{
			ID:          sub.ID,
			QuizID:      sub.QuizID,
			Score:       sub.Score,
			SubmittedAt: sub.SubmittedAt,
		}
		if sub.Student != nil {
			result.Student = StudentSummary{
				ID:           sub.Student.ID,
				Name:         sub.Student.Name,
				UniversityID: sub.Student.UniversityID,
				Email:        sub.Student.Email,
			}
		}
		response.Submissions = append(response.Submissions, result)

		total += sub.Score
		if i == 0 || sub.Score > response.Stats.Highest {
			response.Stats.Highest = sub.Score
		}
		if i == 0 || sub.Score < response.Stats.Lowest {
			response.Stats.Lowest = sub.Score
		}
	}

	response.Stats.Count = len(submissions)
	if response.Stats.Count > 0 {
		mean := float64(total) / float64(response.Stats.Count)
		response.Stats.Average = math.Round(mean*10) / 10
	}

	return response, nil
}

func parseUUID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}
