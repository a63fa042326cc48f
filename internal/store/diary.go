package store

import (
	"context"
	"slices"

	"github.com/evanmoss/dailyq/internal/models"
	"github.com/evanmoss/dailyq/internal/storage"
)

// Diary caches the persisted diary entries.
type Diary struct {
	svc     *storage.Service
	entries []models.DiaryEntry
	loading bool
	err     string
}

func NewDiary(svc *storage.Service) *Diary {
	return &Diary{svc: svc, entries: []models.DiaryEntry{}}
}

// Entries returns the cached entries in insertion order.
func (s *Diary) Entries() []models.DiaryEntry { return s.entries }

func (s *Diary) IsLoading() bool { return s.loading }

// Err returns the last action failure, or "" when the previous action
// succeeded or the error was cleared.
func (s *Diary) Err() string { return s.err }

// ClearError dismisses the recorded error without touching the cache.
func (s *Diary) ClearError() { s.err = "" }

// LoadEntries replaces the cache wholesale with the persisted collection.
func (s *Diary) LoadEntries(ctx context.Context) {
	s.loading = true
	s.err = ""
	defer func() { s.loading = false }()
	capture(&s.err, func() error {
		s.entries = s.svc.DiaryEntries(ctx)
		return nil
	})
}

// AddEntry persists entry (an upsert by ID) and appends it to the cache on
// success. On failure the cache is untouched.
func (s *Diary) AddEntry(ctx context.Context, entry models.DiaryEntry) {
	capture(&s.err, func() error {
		if err := s.svc.SaveDiaryEntry(ctx, entry); err != nil {
			return err
		}
		s.entries = append(s.entries, entry)
		return nil
	})
}

// UpdateEntry persists entry and replaces the matching cache element by ID.
// A cache miss is a no-op for the cache (the write already happened).
func (s *Diary) UpdateEntry(ctx context.Context, entry models.DiaryEntry) {
	capture(&s.err, func() error {
		if err := s.svc.SaveDiaryEntry(ctx, entry); err != nil {
			return err
		}
		for i := range s.entries {
			if s.entries[i].ID == entry.ID {
				s.entries[i] = entry
				break
			}
		}
		return nil
	})
}

// DeleteEntry persists the removal and filters the cache on success.
func (s *Diary) DeleteEntry(ctx context.Context, id string) {
	capture(&s.err, func() error {
		if err := s.svc.DeleteDiaryEntry(ctx, id); err != nil {
			return err
		}
		filtered := make([]models.DiaryEntry, 0, len(s.entries))
		for _, e := range s.entries {
			if e.ID != id {
				filtered = append(filtered, e)
			}
		}
		s.entries = filtered
		return nil
	})
}

// EntryByDate returns the first cached entry with the exact date string.
// Date uniqueness is an app convention, not a store invariant: when several
// entries share a date this returns whichever was cached first.
func (s *Diary) EntryByDate(date string) (models.DiaryEntry, bool) {
	for _, e := range s.entries {
		if e.Date == date {
			return e, true
		}
	}
	return models.DiaryEntry{}, false
}

// EntryByID returns the cached entry with the given ID.
func (s *Diary) EntryByID(id string) (models.DiaryEntry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.DiaryEntry{}, false
}

// AddAnswerToEntry appends answer to the entry's answers and persists the
// updated entry with a refreshed UpdatedAt. Unknown entry IDs are a no-op.
func (s *Diary) AddAnswerToEntry(ctx context.Context, entryID string, answer models.DiaryAnswer) {
	entry, ok := s.EntryByID(entryID)
	if !ok {
		return
	}
	updated := entry
	updated.Answers = append(slices.Clone(entry.Answers), answer)
	updated.Touch()
	s.UpdateEntry(ctx, updated)
}
