// Package reminder turns reminder-time settings into daily notification
// triggers. The actual delivery mechanism sits behind the Notifier
// interface; this package only constructs triggers and keeps the scheduled
// set in sync with settings.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/evanmoss/dailyq/internal/logger"
	"github.com/evanmoss/dailyq/internal/models"
)

// Trigger is one scheduled daily notification.
type Trigger struct {
	ID     string // the reminder time's stable ID
	Hour   int
	Minute int
}

// Notifier schedules and cancels recurring daily triggers.
type Notifier interface {
	Schedule(ctx context.Context, t Trigger) error
	Cancel(ctx context.Context, id string) error
	CancelAll(ctx context.Context) error
}

// NextOccurrence returns the first instant at or after now matching the
// reminder's hour and minute: today if the clock time is still ahead,
// otherwise the same time tomorrow.
func NextOccurrence(now time.Time, t models.ReminderTime) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Scheduler keeps the notifier's scheduled triggers matching settings.
type Scheduler struct {
	notifier Notifier
}

func NewScheduler(n Notifier) *Scheduler {
	return &Scheduler{notifier: n}
}

// Sync cancels every scheduled trigger, then reschedules one per enabled
// reminder time. When notifications are disabled, everything is cancelled
// and nothing is rescheduled.
func (s *Scheduler) Sync(ctx context.Context, settings models.Settings) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("failed to cancel scheduled reminders: %w", err)
	}
	if !settings.NotificationsEnabled {
		return nil
	}
	for _, t := range settings.ReminderTimes {
		if !t.IsEnabled {
			continue
		}
		trigger := Trigger{ID: t.ID, Hour: t.Hour, Minute: t.Minute}
		if err := s.notifier.Schedule(ctx, trigger); err != nil {
			return fmt.Errorf("failed to schedule reminder %02d:%02d: %w", t.Hour, t.Minute, err)
		}
		logger.Debug("scheduled reminder", "id", t.ID, "hour", t.Hour, "minute", t.Minute)
	}
	return nil
}
