package quiz

import "github.com/google/uuid"

type ScoredAnswer struct {
	QuestionID       uuid.UUID
	SelectedOptionID *uuid.UUID
	TextAnswer       *string
	IsCorrect        bool
}

type ScoreResult struct {
	TotalScore int
	MaxScore   int
	Answers    []ScoredAnswer
}

// Score grades a submitted answer set against the quiz's questions. It is
// a pure function: same questions and answers always produce the same
// result, which keeps scoring replayable for audits.
//
// Answers referencing a question outside the quiz are dropped entirely.
// MaxScore accrues only over questions that appear in the answer set, not
// over the whole quiz. That matches the behavior results have always been
// reported with; see the regression test before changing it.
func Score(questions []Question, answers []AnswerDTO) ScoreResult {
	byID := make(map[uuid.UUID]*Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	result := ScoreResult{Answers: make([]ScoredAnswer, 0, len(answers))}

	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			continue
		}

		isCorrect := false
		if question.Type.AutoGraded() && answer.SelectedOptionID != nil {
			for _, option := range question.Options {
				if option.ID == *answer.SelectedOptionID {
					isCorrect = option.IsCorrect
					break
				}
			}
		}

		if isCorrect {
			result.TotalScore += question.Points
		}
		result.MaxScore += question.Points

		result.Answers = append(result.Answers, ScoredAnswer{
			QuestionID:       answer.QuestionID,
			SelectedOptionID: answer.SelectedOptionID,
			TextAnswer:       answer.TextAnswer,
			IsCorrect:        isCorrect,
		})
	}

	return result
}
