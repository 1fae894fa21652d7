package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/attendly-app/attendly-lambda/internal/user"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&user.User{}, &Quiz{}, &Question{}, &Option{}, &Submission{}, &Answer{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newTestService(t *testing.T) (QuizService, *gorm.DB) {
	db := newTestDB(t)
	return NewService(NewRepository(db)), db
}

func createStudent(t *testing.T, db *gorm.DB, name string) *user.User {
	t.Helper()

	u := &user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        strings.ToLower(name) + "@campus.edu",
		UniversityID: "U-" + name,
		Role:         user.RoleStudent,
		PasswordHash: "not-a-real-hash",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return u
}

func validQuizDTO() CreateQuizDTO {
	return CreateQuizDTO{
		Title:    "Midterm review",
		CourseID: uuid.New().String(),
		Questions: []QuestionDTO{
			{
				Text: "Which layer owns transactions?", Type: MULTIPLE_CHOICE, Points: 5,
				Options: []OptionDTO{
					{Text: "Handler"},
					{Text: "Repository", IsCorrect: true},
					{Text: "Router"},
				},
			},
			{
				Text: "Is scoring deterministic?", Type: TRUE_FALSE, Points: 2,
				Options: []OptionDTO{
					{Text: "True", IsCorrect: true},
					{Text: "False"},
				},
			},
			{
				Text: "Explain your reasoning.", Type: TEXT,
			},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestCreateQuizRoundTrip(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	dto := validQuizDTO()
	created, err := service.CreateQuiz(ctx, dto)
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if !created.IsActive {
		t.Error("A new quiz must be active by default")
	}

	fetched, err := service.GetQuizByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizByID failed: %v", err)
	}

	if len(fetched.Questions) != len(dto.Questions) {
		t.Fatalf("Question count = %d, want %d", len(fetched.Questions), len(dto.Questions))
	}
	for i, question := range fetched.Questions {
		if question.OrderIndex != i {
			t.Errorf("Question %d has order_index %d", i, question.OrderIndex)
		}
		if question.Text != dto.Questions[i].Text {
			t.Errorf("Question %d out of order: %q", i, question.Text)
		}
		if len(question.Options) != len(dto.Questions[i].Options) {
			t.Errorf("Question %d option count = %d, want %d",
				i, len(question.Options), len(dto.Questions[i].Options))
		}
	}

	// Points left empty on the TEXT question must default to 1.
	if fetched.Questions[2].Points != 1 {
		t.Errorf("TEXT question points = %d, want default 1", fetched.Questions[2].Points)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	cases := map[string]func(*CreateQuizDTO){
		"MissingTitle":    func(dto *CreateQuizDTO) { dto.Title = "" },
		"MissingCourse":   func(dto *CreateQuizDTO) { dto.CourseID = "" },
		"MalformedCourse": func(dto *CreateQuizDTO) { dto.CourseID = "42" },
		"NoCorrectOption": func(dto *CreateQuizDTO) {
			dto.Questions[0].Options[1].IsCorrect = false
		},
		"TwoCorrectOptions": func(dto *CreateQuizDTO) {
			dto.Questions[0].Options[0].IsCorrect = true
		},
		"TrueFalseWithThreeOptions": func(dto *CreateQuizDTO) {
			dto.Questions[1].Options = append(dto.Questions[1].Options, OptionDTO{Text: "Maybe"})
		},
		"NegativePoints": func(dto *CreateQuizDTO) {
			dto.Questions[0].Points = -5
		},
		"UnknownType": func(dto *CreateQuizDTO) {
			dto.Questions[0].Type = "ESSAY"
		},
		"EmptyQuestionText": func(dto *CreateQuizDTO) {
			dto.Questions[0].Text = ""
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			service, db := newTestService(t)

			dto := validQuizDTO()
			mutate(&dto)

			_, err := service.CreateQuiz(context.Background(), dto)
			if !IsValidationError(err) {
				t.Fatalf("Expected a ValidationError, got: %v", err)
			}

			// Nothing may be persisted on a rejected payload.
			if n := countRows(t, db, &Quiz{}); n != 0 {
				t.Errorf("Found %d quiz rows after failed create", n)
			}
			if n := countRows(t, db, &Question{}); n != 0 {
				t.Errorf("Found %d question rows after failed create", n)
			}
		})
	}
}

func TestGetQuizForTakeStripsCorrectness(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, validQuizDTO())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	view, err := service.GetQuizForTake(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizForTake failed: %v", err)
	}

	if len(view.Questions) != 3 {
		t.Fatalf("Take view question count = %d, want 3", len(view.Questions))
	}
	for i, question := range view.Questions {
		if question.OrderIndex != i {
			t.Errorf("Take view question %d has order_index %d", i, question.OrderIndex)
		}
		for _, option := range question.Options {
			if option.ID == uuid.Nil || option.Text == "" {
				t.Errorf("Take view option missing id or text: %+v", option)
			}
		}
	}

	// The authoring view still carries correctness for the professor.
	full, err := service.GetQuizByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizByID failed: %v", err)
	}
	found := false
	for _, option := range full.Questions[0].Options {
		if option.IsCorrect {
			found = true
		}
	}
	if !found {
		t.Error("Authoring view lost the correct-option flag")
	}
}

func TestSubmitQuiz(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, validQuizDTO())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	full, err := service.GetQuizByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizByID failed: %v", err)
	}
	student := createStudent(t, db, "Amina")

	mc := full.Questions[0]
	var correctOption, wrongOption Option
	for _, option := range mc.Options {
		if option.IsCorrect {
			correctOption = option
		} else {
			wrongOption = option
		}
	}

	t.Run("CorrectAnswerScoresFullPoints", func(t *testing.T) {
		sub, err := service.SubmitQuiz(ctx, full.ID.String(), student.ID, []AnswerDTO{
			{QuestionID: mc.ID, SelectedOptionID: &correctOption.ID},
		})
		if err != nil {
			t.Fatalf("SubmitQuiz failed: %v", err)
		}
		if sub.Score != 5 {
			t.Errorf("Score = %d, want 5", sub.Score)
		}
		if sub.ID == uuid.Nil || sub.SubmittedAt.IsZero() {
			t.Errorf("Submission missing id or timestamp: %+v", sub)
		}
		if len(sub.Answers) != 1 || !sub.Answers[0].IsCorrect {
			t.Errorf("Answer record not persisted as correct: %+v", sub.Answers)
		}
	})

	t.Run("WrongAnswerScoresZero", func(t *testing.T) {
		sub, err := service.SubmitQuiz(ctx, full.ID.String(), student.ID, []AnswerDTO{
			{QuestionID: mc.ID, SelectedOptionID: &wrongOption.ID},
		})
		if err != nil {
			t.Fatalf("SubmitQuiz failed: %v", err)
		}
		if sub.Score != 0 {
			t.Errorf("Score = %d, want 0", sub.Score)
		}
	})

	t.Run("UnknownQuestionAnswersAreNotPersisted", func(t *testing.T) {
		before := countRows(t, db, &Answer{})
		sub, err := service.SubmitQuiz(ctx, full.ID.String(), student.ID, []AnswerDTO{
			{QuestionID: uuid.New(), SelectedOptionID: &correctOption.ID},
		})
		if err != nil {
			t.Fatalf("SubmitQuiz failed: %v", err)
		}
		if sub.Score != 0 || len(sub.Answers) != 0 {
			t.Errorf("Unknown question answer leaked into submission: %+v", sub)
		}
		if after := countRows(t, db, &Answer{}); after != before {
			t.Errorf("Answer rows grew from %d to %d", before, after)
		}
	})

	t.Run("QuizNotFound", func(t *testing.T) {
		_, err := service.SubmitQuiz(ctx, uuid.New().String(), student.ID, nil)
		if !errors.Is(err, ErrQuizNotFound) {
			t.Errorf("Expected ErrQuizNotFound, got: %v", err)
		}
	})
}

func TestMultipleAttemptsCreateDistinctSubmissions(t *testing.T) {
	// There is no uniqueness constraint on (quiz, student): every attempt
	// is stored. Results report all of them.
	service, db := newTestService(t)
	ctx := context.Background()

	created, _ := service.CreateQuiz(ctx, validQuizDTO())
	student := createStudent(t, db, "Bruno")

	first, err := service.SubmitQuiz(ctx, created.ID.String(), student.ID, []AnswerDTO{})
	if err != nil {
		t.Fatalf("First attempt failed: %v", err)
	}
	second, err := service.SubmitQuiz(ctx, created.ID.String(), student.ID, []AnswerDTO{})
	if err != nil {
		t.Fatalf("Second attempt failed: %v", err)
	}

	if first.ID == second.ID {
		t.Error("Attempts must produce distinct submission rows")
	}
	if n := countRows(t, db, &Submission{}); n != 2 {
		t.Errorf("Submission rows = %d, want 2", n)
	}
}

func TestGetQuizResults(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	// Three questions worth 10 each so attempts can land on 10/20/30.
	dto := CreateQuizDTO{Title: "Scored quiz", CourseID: uuid.New().String()}
	for i := 0; i < 3; i++ {
		dto.Questions = append(dto.Questions, QuestionDTO{
			Text: fmt.Sprintf("question %d", i), Type: MULTIPLE_CHOICE, Points: 10,
			Options: []OptionDTO{
				{Text: "right", IsCorrect: true},
				{Text: "wrong"},
			},
		})
	}

	created, err := service.CreateQuiz(ctx, dto)
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	full, _ := service.GetQuizByID(ctx, created.ID.String())

	correctAnswer := func(q Question) AnswerDTO {
		for _, option := range q.Options {
			if option.IsCorrect {
				return AnswerDTO{QuestionID: q.ID, SelectedOptionID: &option.ID}
			}
		}
		t.Fatalf("question %s has no correct option", q.ID)
		return AnswerDTO{}
	}
	wrongAnswer := func(q Question) AnswerDTO {
		for _, option := range q.Options {
			if !option.IsCorrect {
				return AnswerDTO{QuestionID: q.ID, SelectedOptionID: &option.ID}
			}
		}
		t.Fatalf("question %s has no wrong option", q.ID)
		return AnswerDTO{}
	}

	students := []*user.User{
		createStudent(t, db, "Carla"),
		createStudent(t, db, "Diego"),
		createStudent(t, db, "Elena"),
	}
	attempts := [][]AnswerDTO{
		{correctAnswer(full.Questions[0]), wrongAnswer(full.Questions[1]), wrongAnswer(full.Questions[2])},
		{correctAnswer(full.Questions[0]), correctAnswer(full.Questions[1]), wrongAnswer(full.Questions[2])},
		{correctAnswer(full.Questions[0]), correctAnswer(full.Questions[1]), correctAnswer(full.Questions[2])},
	}
	for i, answers := range attempts {
		if _, err := service.SubmitQuiz(ctx, created.ID.String(), students[i].ID, answers); err != nil {
			t.Fatalf("Attempt %d failed: %v", i, err)
		}
	}

	results, err := service.GetQuizResults(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizResults failed: %v", err)
	}

	if results.Stats.Count != 3 {
		t.Errorf("Count = %d, want 3", results.Stats.Count)
	}
	if results.Stats.Average != 20 {
		t.Errorf("Average = %v, want 20", results.Stats.Average)
	}
	if results.Stats.Highest != 30 || results.Stats.Lowest != 10 {
		t.Errorf("Highest/Lowest = %d/%d, want 30/10", results.Stats.Highest, results.Stats.Lowest)
	}

	wantScores := []int{30, 20, 10}
	for i, sub := range results.Submissions {
		if sub.Score != wantScores[i] {
			t.Errorf("Submission %d score = %d, want %d (descending order)", i, sub.Score, wantScores[i])
		}
		if sub.Student.Name == "" || sub.Student.Email == "" || sub.Student.UniversityID == "" {
			t.Errorf("Submission %d missing student identity: %+v", i, sub.Student)
		}
	}
}

func TestGetQuizResultsAverageRounding(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	dto := CreateQuizDTO{Title: "Rounding quiz", CourseID: uuid.New().String(), Questions: []QuestionDTO{
		{Text: "q1", Type: MULTIPLE_CHOICE, Points: 10, Options: []OptionDTO{
			{Text: "right", IsCorrect: true}, {Text: "wrong"},
		}},
		{Text: "q2", Type: MULTIPLE_CHOICE, Points: 5, Options: []OptionDTO{
			{Text: "right", IsCorrect: true}, {Text: "wrong"},
		}},
	}}
	created, _ := service.CreateQuiz(ctx, dto)
	full, _ := service.GetQuizByID(ctx, created.ID.String())

	pick := func(q Question, correct bool) AnswerDTO {
		for _, option := range q.Options {
			if option.IsCorrect == correct {
				return AnswerDTO{QuestionID: q.ID, SelectedOptionID: &option.ID}
			}
		}
		return AnswerDTO{}
	}

	// Scores 15 and 10: mean 12.5 stays 12.5; scores 15, 10, 10: mean
	// 11.666... rounds to 11.7.
	a := createStudent(t, db, "Farid")
	b := createStudent(t, db, "Gina")
	c := createStudent(t, db, "Hugo")
	service.SubmitQuiz(ctx, created.ID.String(), a.ID, []AnswerDTO{pick(full.Questions[0], true), pick(full.Questions[1], true)})
	service.SubmitQuiz(ctx, created.ID.String(), b.ID, []AnswerDTO{pick(full.Questions[0], true), pick(full.Questions[1], false)})

	results, err := service.GetQuizResults(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizResults failed: %v", err)
	}
	if results.Stats.Average != 12.5 {
		t.Errorf("Average = %v, want 12.5", results.Stats.Average)
	}

	service.SubmitQuiz(ctx, created.ID.String(), c.ID, []AnswerDTO{pick(full.Questions[0], true), pick(full.Questions[1], false)})
	results, _ = service.GetQuizResults(ctx, created.ID.String())
	if results.Stats.Average != 11.7 {
		t.Errorf("Average = %v, want 11.7 (one decimal place)", results.Stats.Average)
	}
}

func TestGetQuizResultsEmpty(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, validQuizDTO())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	results, err := service.GetQuizResults(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("GetQuizResults failed: %v", err)
	}

	if len(results.Submissions) != 0 {
		t.Errorf("Expected no submissions, got %d", len(results.Submissions))
	}
	stats := results.Stats
	if stats.Count != 0 || stats.Average != 0 || stats.Highest != 0 || stats.Lowest != 0 {
		t.Errorf("Empty quiz stats must be all zero, got %+v", stats)
	}
}

func TestDeleteQuizCascades(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, validQuizDTO())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	student := createStudent(t, db, "Ivana")
	full, _ := service.GetQuizByID(ctx, created.ID.String())
	if _, err := service.SubmitQuiz(ctx, created.ID.String(), student.ID, []AnswerDTO{
		{QuestionID: full.Questions[0].ID},
	}); err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	if err := service.DeleteQuiz(ctx, created.ID.String()); err != nil {
		t.Fatalf("DeleteQuiz failed: %v", err)
	}

	if _, err := service.GetQuizByID(ctx, created.ID.String()); !errors.Is(err, ErrQuizNotFound) {
		t.Errorf("Expected ErrQuizNotFound after delete, got: %v", err)
	}
	for model, name := range map[interface{}]string{
		&Question{}:   "questions",
		&Option{}:     "options",
		&Submission{}: "submissions",
		&Answer{}:     "answers",
	} {
		if n := countRows(t, db, model); n != 0 {
			t.Errorf("%s not cascaded: %d rows left", name, n)
		}
	}

	t.Run("DeleteMissingQuiz", func(t *testing.T) {
		if err := service.DeleteQuiz(ctx, uuid.New().String()); !errors.Is(err, ErrQuizNotFound) {
			t.Errorf("Expected ErrQuizNotFound, got: %v", err)
		}
	})
}

func TestListQuizzesByCourse(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()

	courseID := uuid.New().String()

	first := validQuizDTO()
	first.Title = "First quiz"
	first.CourseID = courseID
	second := validQuizDTO()
	second.Title = "Second quiz"
	second.CourseID = courseID

	createdFirst, err := service.CreateQuiz(ctx, first)
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if _, err := service.CreateQuiz(ctx, second); err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	student := createStudent(t, db, "Jonas")
	if _, err := service.SubmitQuiz(ctx, createdFirst.ID.String(), student.ID, []AnswerDTO{}); err != nil {
		t.Fatalf("SubmitQuiz failed: %v", err)
	}

	quizzes, err := service.GetQuizzesByCourse(ctx, courseID)
	if err != nil {
		t.Fatalf("GetQuizzesByCourse failed: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("Quiz count = %d, want 2", len(quizzes))
	}

	for _, q := range quizzes {
		if q.QuestionCount == nil || *q.QuestionCount != 3 {
			t.Errorf("Quiz %q question_count annotation = %v, want 3", q.Title, q.QuestionCount)
		}
		if len(q.Questions) != 0 {
			t.Errorf("Listing must not eagerly load questions, got %d", len(q.Questions))
		}
		want := int64(0)
		if q.ID == createdFirst.ID {
			want = 1
		}
		if q.SubmissionCount == nil || *q.SubmissionCount != want {
			t.Errorf("Quiz %q submission_count annotation = %v, want %d", q.Title, q.SubmissionCount, want)
		}
	}

	if _, err := service.GetQuizzesByCourse(ctx, "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Expected ErrInvalidID, got: %v", err)
	}
}
