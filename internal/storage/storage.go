package storage

import (
	"context"

	"github.com/evanmoss/dailyq/internal/models"
)

// Domain operations. Every write here serializes the whole collection back
// under its key: one read-modify-write round trip per call, O(n) in the
// collection size. That is fine at personal-diary scale and is not atomic
// across concurrently issued calls — the later writer's snapshot wins.

// DiaryEntries returns all persisted entries; empty when nothing is stored.
func (s *Service) DiaryEntries(ctx context.Context) []models.DiaryEntry {
	entries, ok := Get[[]models.DiaryEntry](ctx, s, KeyDiaryEntries)
	if !ok || entries == nil {
		return []models.DiaryEntry{}
	}
	return entries
}

// SaveDiaryEntry upserts entry by ID: an existing entry with the same ID is
// replaced in place, otherwise the entry is appended.
func (s *Service) SaveDiaryEntry(ctx context.Context, entry models.DiaryEntry) error {
	entries := s.DiaryEntries(ctx)
	replaced := false
	for i := range entries {
		if entries[i].ID == entry.ID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	return s.Set(ctx, KeyDiaryEntries, entries)
}

// DeleteDiaryEntry removes the entry with the given ID. Deleting an unknown
// ID rewrites the collection unchanged.
func (s *Service) DeleteDiaryEntry(ctx context.Context, id string) error {
	entries := s.DiaryEntries(ctx)
	filtered := make([]models.DiaryEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return s.Set(ctx, KeyDiaryEntries, filtered)
}

// Questions returns all persisted questions; empty when nothing is stored.
func (s *Service) Questions(ctx context.Context) []models.Question {
	questions, ok := Get[[]models.Question](ctx, s, KeyQuestions)
	if !ok || questions == nil {
		return []models.Question{}
	}
	return questions
}

// SaveQuestions replaces the whole question collection.
func (s *Service) SaveQuestions(ctx context.Context, questions []models.Question) error {
	return s.Set(ctx, KeyQuestions, questions)
}

// Settings returns the persisted settings, or the defaults when nothing is
// stored yet.
func (s *Service) Settings(ctx context.Context) models.Settings {
	settings, ok := Get[models.Settings](ctx, s, KeySettings)
	if !ok {
		return models.DefaultSettings()
	}
	if settings.ReminderTimes == nil {
		settings.ReminderTimes = []models.ReminderTime{}
	}
	return settings
}

// SaveSettings replaces the whole settings record.
func (s *Service) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.Set(ctx, KeySettings, settings)
}
