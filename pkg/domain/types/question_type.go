package types

import "fmt"

// QuestionType represents the input type of a template question
type QuestionType string

const (
	QuestionTypeYesNo          QuestionType = "yes-no"
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeScale          QuestionType = "scale"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeFileUpload     QuestionType = "file-upload"
)

// IsValid checks if the question type is valid
func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTypeYesNo,
		QuestionTypeMultipleChoice,
		QuestionTypeScale,
		QuestionTypeText,
		QuestionTypeFileUpload:
		return true
	default:
		return false
	}
}

// String returns the string representation of the question type
func (q QuestionType) String() string {
	return string(q)
}

// ParseQuestionType parses a string into a QuestionType
func ParseQuestionType(s string) (QuestionType, error) {
	qt := QuestionType(s)
	if !qt.IsValid() {
		return "", fmt.Errorf("invalid question type: %s", s)
	}
	return qt, nil
}
