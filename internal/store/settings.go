package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/evanmoss/dailyq/internal/models"
	"github.com/evanmoss/dailyq/internal/storage"
)

// Settings caches the singleton settings record. Reminder times are
// addressed by position; a remove or toggle at an index that does not exist
// leaves the list unchanged but still persists and succeeds, while an
// update at such an index is rejected outright (see UpdateReminderTime).
type Settings struct {
	svc      *storage.Service
	settings models.Settings
	loading  bool
	err      string
}

func NewSettings(svc *storage.Service) *Settings {
	return &Settings{svc: svc, settings: models.DefaultSettings()}
}

func (s *Settings) Current() models.Settings { return s.settings }

func (s *Settings) IsLoading() bool { return s.loading }

func (s *Settings) Err() string { return s.err }

func (s *Settings) ClearError() { s.err = "" }

// LoadSettings replaces the cache with the persisted record, or the
// defaults when nothing is persisted yet.
func (s *Settings) LoadSettings(ctx context.Context) {
	s.loading = true
	s.err = ""
	defer func() { s.loading = false }()
	capture(&s.err, func() error {
		s.settings = s.svc.Settings(ctx)
		return nil
	})
}

// AddReminderTime appends time to the reminder list and persists.
func (s *Settings) AddReminderTime(ctx context.Context, time models.ReminderTime) {
	next := s.settings
	next.ReminderTimes = append(slices.Clone(s.settings.ReminderTimes), time)
	s.persist(ctx, next)
}

// UpdateReminderTime replaces the reminder at index. An out-of-range index
// is rejected with an error instead of extending the list — the one place
// positional addressing fails loudly rather than silently.
func (s *Settings) UpdateReminderTime(ctx context.Context, index int, time models.ReminderTime) {
	capture(&s.err, func() error {
		if index < 0 || index >= len(s.settings.ReminderTimes) {
			return fmt.Errorf("reminder time index out of range: %d", index)
		}
		next := s.settings
		next.ReminderTimes = slices.Clone(s.settings.ReminderTimes)
		next.ReminderTimes[index] = time
		if err := s.svc.SaveSettings(ctx, next); err != nil {
			return err
		}
		s.settings = next
		return nil
	})
}

// RemoveReminderTime drops the reminder at index. An out-of-range index
// leaves the list unchanged; the unchanged record is still persisted.
func (s *Settings) RemoveReminderTime(ctx context.Context, index int) {
	next := s.settings
	next.ReminderTimes = make([]models.ReminderTime, 0, len(s.settings.ReminderTimes))
	for i, t := range s.settings.ReminderTimes {
		if i != index {
			next.ReminderTimes = append(next.ReminderTimes, t)
		}
	}
	s.persist(ctx, next)
}

// ToggleReminderTime flips IsEnabled for the reminder at index. An
// out-of-range index leaves the list unchanged; the unchanged record is
// still persisted.
func (s *Settings) ToggleReminderTime(ctx context.Context, index int) {
	next := s.settings
	next.ReminderTimes = slices.Clone(s.settings.ReminderTimes)
	if index >= 0 && index < len(next.ReminderTimes) {
		next.ReminderTimes[index].IsEnabled = !next.ReminderTimes[index].IsEnabled
	}
	s.persist(ctx, next)
}

// SetDarkMode persists the dark-mode flag.
func (s *Settings) SetDarkMode(ctx context.Context, isDarkMode bool) {
	next := s.settings
	next.IsDarkMode = isDarkMode
	s.persist(ctx, next)
}

// SetNotificationsEnabled persists the notifications flag.
func (s *Settings) SetNotificationsEnabled(ctx context.Context, enabled bool) {
	next := s.settings
	next.NotificationsEnabled = enabled
	s.persist(ctx, next)
}

// EnabledReminderTimes returns the enabled reminders in their original
// order. Pure cache read, no storage I/O.
func (s *Settings) EnabledReminderTimes() []models.ReminderTime {
	enabled := make([]models.ReminderTime, 0, len(s.settings.ReminderTimes))
	for _, t := range s.settings.ReminderTimes {
		if t.IsEnabled {
			enabled = append(enabled, t)
		}
	}
	return enabled
}

func (s *Settings) persist(ctx context.Context, next models.Settings) {
	capture(&s.err, func() error {
		if err := s.svc.SaveSettings(ctx, next); err != nil {
			return err
		}
		s.settings = next
		return nil
	})
}
