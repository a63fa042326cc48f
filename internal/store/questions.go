package store

import (
	"context"
	"sort"

	"github.com/evanmoss/dailyq/internal/models"
	"github.com/evanmoss/dailyq/internal/storage"
)

// Questions caches the persisted question definitions.
type Questions struct {
	svc       *storage.Service
	questions []models.Question
	loading   bool
	err       string
}

func NewQuestions(svc *storage.Service) *Questions {
	return &Questions{svc: svc, questions: []models.Question{}}
}

func (s *Questions) All() []models.Question { return s.questions }

func (s *Questions) IsLoading() bool { return s.loading }

func (s *Questions) Err() string { return s.err }

func (s *Questions) ClearError() { s.err = "" }

// LoadQuestions replaces the cache with the persisted collection. When
// storage is empty the default question set is persisted and adopted, so a
// first run always ends up with usable questions. The seed write is part of
// this method's contract, not a hidden side effect.
func (s *Questions) LoadQuestions(ctx context.Context) {
	s.loading = true
	s.err = ""
	defer func() { s.loading = false }()
	capture(&s.err, func() error {
		questions := s.svc.Questions(ctx)
		if len(questions) == 0 {
			questions = models.DefaultQuestions()
			if err := s.svc.SaveQuestions(ctx, questions); err != nil {
				return err
			}
		}
		s.questions = questions
		return nil
	})
}

// AddQuestion persists the collection with question appended and updates
// the cache on success.
func (s *Questions) AddQuestion(ctx context.Context, question models.Question) {
	next := make([]models.Question, 0, len(s.questions)+1)
	next = append(next, s.questions...)
	next = append(next, question)
	s.persist(ctx, next)
}

// UpdateQuestion replaces the question with the matching ID.
func (s *Questions) UpdateQuestion(ctx context.Context, question models.Question) {
	next := make([]models.Question, len(s.questions))
	for i, q := range s.questions {
		if q.ID == question.ID {
			next[i] = question
		} else {
			next[i] = q
		}
	}
	s.persist(ctx, next)
}

// DeleteQuestion removes the question with the given ID.
func (s *Questions) DeleteQuestion(ctx context.Context, id string) {
	next := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.ID != id {
			next = append(next, q)
		}
	}
	s.persist(ctx, next)
}

// ReorderQuestions rewrites every question's Order to its 1-based rank in
// orderedIds. Callers must list every question: an ID missing from
// orderedIds collapses that question's order to 0.
func (s *Questions) ReorderQuestions(ctx context.Context, orderedIds []string) {
	rank := make(map[string]int, len(orderedIds))
	for i, id := range orderedIds {
		if _, seen := rank[id]; !seen {
			rank[id] = i + 1
		}
	}
	next := make([]models.Question, len(s.questions))
	for i, q := range s.questions {
		q.Order = rank[q.ID]
		next[i] = q
	}
	s.persist(ctx, next)
}

// ToggleQuestionActive flips IsActive for the matching question only.
func (s *Questions) ToggleQuestionActive(ctx context.Context, id string) {
	next := make([]models.Question, len(s.questions))
	for i, q := range s.questions {
		if q.ID == id {
			q.IsActive = !q.IsActive
		}
		next[i] = q
	}
	s.persist(ctx, next)
}

// ActiveQuestions returns the active subset sorted ascending by Order,
// stable on ties. Pure cache read, no storage I/O.
func (s *Questions) ActiveQuestions() []models.Question {
	active := make([]models.Question, 0, len(s.questions))
	for _, q := range s.questions {
		if q.IsActive {
			active = append(active, q)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Order < active[j].Order
	})
	return active
}

// ResetToDefaults unconditionally overwrites the collection with the
// default question set.
func (s *Questions) ResetToDefaults(ctx context.Context) {
	s.persist(ctx, models.DefaultQuestions())
}

func (s *Questions) persist(ctx context.Context, next []models.Question) {
	capture(&s.err, func() error {
		if err := s.svc.SaveQuestions(ctx, next); err != nil {
			return err
		}
		s.questions = next
		return nil
	})
}
