package models

import (
	"time"

	"github.com/google/uuid"
)

type AnswerType string

const (
	AnswerText   AnswerType = "text"
	AnswerRating AnswerType = "rating"
)

// DiaryAnswer is an immutable snapshot of a question and its answer at the
// time of writing. The question text and type are copied in so historical
// entries stay legible after the live question is edited or deleted.
type DiaryAnswer struct {
	QuestionID   string     `json:"questionId"`
	QuestionText string     `json:"questionText"`
	Value        Value      `json:"value"`
	Type         AnswerType `json:"type"`
}

// DiaryEntry is one day's set of answers. The app convention is one entry
// per calendar date, but the store does not enforce date uniqueness; callers
// go through EntryByDate for the per-day lookup.
type DiaryEntry struct {
	ID        string        `json:"id"`
	Date      string        `json:"date"` // YYYY-MM-DD
	CreatedAt string        `json:"createdAt"` // RFC3339
	UpdatedAt string        `json:"updatedAt"` // RFC3339
	Answers   []DiaryAnswer `json:"answers"`
}

// NewDiaryEntry creates an empty entry for the given date with a fresh ID
// and matching created/updated timestamps.
func NewDiaryEntry(date string) DiaryEntry {
	now := time.Now().UTC().Format(time.RFC3339)
	return DiaryEntry{
		ID:        uuid.NewString(),
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
		Answers:   []DiaryAnswer{},
	}
}

// Touch refreshes the entry's updated timestamp.
func (e *DiaryEntry) Touch() {
	e.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
}
