package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ReminderTime is a daily recurring reminder trigger. The settings store
// addresses reminder times by position for display and editing; ID is the
// stable handle the notification scheduler cancels by, so a reorder or
// removal never retargets another reminder's trigger.
type ReminderTime struct {
	ID        string `json:"id"`
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	IsEnabled bool   `json:"isEnabled"`
}

// NewReminderTime creates an enabled reminder, validating the clock fields.
func NewReminderTime(hour, minute int) (ReminderTime, error) {
	if hour < 0 || hour > 23 {
		return ReminderTime{}, fmt.Errorf("reminder hour must be between 0 and 23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return ReminderTime{}, fmt.Errorf("reminder minute must be between 0 and 59, got %d", minute)
	}
	return ReminderTime{
		ID:        uuid.NewString(),
		Hour:      hour,
		Minute:    minute,
		IsEnabled: true,
	}, nil
}

// Settings is the singleton application settings record.
type Settings struct {
	ReminderTimes        []ReminderTime `json:"reminderTimes"`
	IsDarkMode           bool           `json:"isDarkMode"`
	NotificationsEnabled bool           `json:"notificationsEnabled"`
}

// DefaultSettings returns the settings used when nothing is persisted yet.
func DefaultSettings() Settings {
	return Settings{
		ReminderTimes:        []ReminderTime{},
		IsDarkMode:           false,
		NotificationsEnabled: true,
	}
}
