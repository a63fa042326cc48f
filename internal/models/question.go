package models

import (
	"fmt"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionText      QuestionType = "text"
	QuestionMultiline QuestionType = "multiline"
	QuestionRating    QuestionType = "rating"
	QuestionChoice    QuestionType = "choice"
)

// Question is a prompt shown during diary input. Order defines the display
// sequence and is not required to be contiguous or unique. Options is only
// meaningful for choice questions.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Order    int          `json:"order"`
	IsActive bool         `json:"isActive"`
}

// NewQuestion creates an active question with a fresh ID.
func NewQuestion(text string, typ QuestionType, order int, options []string) Question {
	q := Question{
		ID:       uuid.NewString(),
		Text:     text,
		Type:     typ,
		Order:    order,
		IsActive: true,
	}
	if len(options) > 0 {
		q.Options = options
	}
	return q
}

// ValidateQuestionType checks that typ is one of the supported kinds.
func ValidateQuestionType(typ QuestionType) error {
	switch typ {
	case QuestionText, QuestionMultiline, QuestionRating, QuestionChoice:
		return nil
	}
	return fmt.Errorf("invalid question type: %q", typ)
}

// AnswerTypeFor maps a question type to the answer type recorded in entries.
// Rating questions produce rating answers, everything else free text.
func AnswerTypeFor(typ QuestionType) AnswerType {
	if typ == QuestionRating {
		return AnswerRating
	}
	return AnswerText
}

// DefaultQuestions returns the starter question set seeded on first run.
func DefaultQuestions() []Question {
	return []Question{
		{ID: "default-1", Text: "How was your mood today?", Type: QuestionRating, Order: 1, IsActive: true},
		{ID: "default-2", Text: "What was one good thing that happened today?", Type: QuestionMultiline, Order: 2, IsActive: true},
		{ID: "default-3", Text: "What did you learn or notice today?", Type: QuestionMultiline, Order: 3, IsActive: true},
		{ID: "default-4", Text: "What is your goal for tomorrow?", Type: QuestionMultiline, Order: 4, IsActive: true},
	}
}
