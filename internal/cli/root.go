package cli

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/evanmoss/dailyq/internal/config"
	"github.com/evanmoss/dailyq/internal/export"
	"github.com/evanmoss/dailyq/internal/logger"
	"github.com/evanmoss/dailyq/internal/reminder"
	"github.com/evanmoss/dailyq/internal/store"
)

// Context carries every store and collaborator a command can need. It is
// assembled once in main and passed down by kong — stores are never
// reached through package globals.
type Context struct {
	Ctx       context.Context
	Config    *config.Config
	Diary     *store.Diary
	Questions *store.Questions
	Settings  *store.Settings
	Exporter  export.Exporter
	Scheduler *reminder.Scheduler
}

// StoreErr converts a store's error field into a command error. Store
// actions surface failures through their Err field rather than return
// values; commands call this right after an action to fail loudly.
func StoreErr(msg string) error {
	if msg != "" {
		return errors.New(msg)
	}
	return nil
}

// SyncReminders reconciles scheduled notification triggers with the
// current settings. Scheduling is best-effort from the CLI's point of
// view: a missing reminder agent must not fail the settings change that
// triggered the sync.
func (c *Context) SyncReminders() {
	if err := c.Scheduler.Sync(c.Ctx, c.Settings.Current()); err != nil {
		logger.Warn("Reminder sync failed", "error", err)
	}
}

// NewAgentNotifier builds the default notifier for the local reminder
// agent, with its lockfile under the app config dir.
func NewAgentNotifier() (*reminder.AgentNotifier, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}
	return &reminder.AgentNotifier{
		LockfilePath: filepath.Join(dir, "agent.lock"),
		AgentName:    "dailyq-agent",
	}, nil
}
