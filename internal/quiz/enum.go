package quiz

type QuestionType string

const (
	MULTIPLE_CHOICE QuestionType = "MULTIPLE_CHOICE"
	TRUE_FALSE      QuestionType = "TRUE_FALSE"
	TEXT            QuestionType = "TEXT"
)

var AllQuestionTypes = []QuestionType{
	MULTIPLE_CHOICE,
	TRUE_FALSE,
	TEXT,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// AutoGraded reports whether the type is scored by option correctness.
// TEXT answers are recorded but left for manual grading.
func (t QuestionType) AutoGraded() bool {
	return t == MULTIPLE_CHOICE || t == TRUE_FALSE
}
