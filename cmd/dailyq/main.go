package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/cli/entries"
	"github.com/evanmoss/dailyq/internal/cli/exports"
	"github.com/evanmoss/dailyq/internal/cli/questions"
	"github.com/evanmoss/dailyq/internal/cli/settings"
	"github.com/evanmoss/dailyq/internal/cli/system"
	"github.com/evanmoss/dailyq/internal/config"
	"github.com/evanmoss/dailyq/internal/export"
	"github.com/evanmoss/dailyq/internal/kv"
	"github.com/evanmoss/dailyq/internal/logger"
	"github.com/evanmoss/dailyq/internal/reminder"
	"github.com/evanmoss/dailyq/internal/storage"
	"github.com/evanmoss/dailyq/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize dailyq storage and seed the default questions."`
	Today  entries.TodayCmd `cmd:"" help:"Answer today's questions." default:"1"`
	Export struct {
		JSON exports.JSONCmd `cmd:"" help:"Export all entries as JSON."`
		CSV  exports.CSVCmd  `cmd:"" help:"Export all entries as CSV."`
	} `cmd:"" help:"Export diary entries."`
	Entry struct {
		List   entries.ListCmd   `cmd:"" help:"List diary entries." default:"1"`
		Show   entries.ShowCmd   `cmd:"" help:"Show one entry's answers."`
		Delete entries.DeleteCmd `cmd:"" help:"Delete an entry."`
	} `cmd:"" help:"Browse and manage diary entries."`
	Question struct {
		Add     questions.AddCmd     `cmd:"" help:"Add a new question."`
		List    questions.ListCmd    `cmd:"" help:"List questions." default:"1"`
		Edit    questions.EditCmd    `cmd:"" help:"Edit a question."`
		Delete  questions.DeleteCmd  `cmd:"" help:"Delete a question."`
		Reorder questions.ReorderCmd `cmd:"" help:"Reorder questions by listing their IDs."`
		Toggle  questions.ToggleCmd  `cmd:"" help:"Toggle a question's active state."`
		Reset   questions.ResetCmd   `cmd:"" help:"Reset questions to the default set."`
	} `cmd:"" help:"Manage diary questions."`
	Reminder struct {
		Add    settings.ReminderAddCmd    `cmd:"" help:"Add a daily reminder (HH:MM)."`
		List   settings.ReminderListCmd   `cmd:"" help:"List reminders." default:"1"`
		Remove settings.ReminderRemoveCmd `cmd:"" help:"Remove a reminder by index."`
		Toggle settings.ReminderToggleCmd `cmd:"" help:"Enable or disable a reminder by index."`
		Update settings.ReminderUpdateCmd `cmd:"" help:"Change a reminder's time."`
	} `cmd:"" help:"Manage daily reminders."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("dailyq"),
		kong.Description("Question-driven daily journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	configDir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(logger.Config{Debug: cfg.Debug, ConfigDir: configDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var backend kv.Store
	switch cfg.Backend {
	case config.BackendDiskv:
		s, err := kv.NewDiskvStore(cfg.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		backend = s
	default:
		s, err := kv.NewSQLiteStore(cfg.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()
		backend = s
	}

	svc := storage.New(backend)

	notifier, err := cli.NewAgentNotifier()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Ctx:       ctx,
		Config:    cfg,
		Diary:     store.NewDiary(svc),
		Questions: store.NewQuestions(svc),
		Settings:  store.NewSettings(svc),
		Exporter: export.Exporter{
			Writer: export.DirWriter{Dir: cfg.ExportDir},
		},
		Scheduler: reminder.NewScheduler(notifier),
	}

	// Hydrate every store once up front; commands work off the caches.
	appCtx.Diary.LoadEntries(ctx)
	appCtx.Questions.LoadQuestions(ctx)
	appCtx.Settings.LoadSettings(ctx)
	for _, msg := range []string{appCtx.Diary.Err(), appCtx.Questions.Err(), appCtx.Settings.Err()} {
		if msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
			os.Exit(1)
		}
	}

	if err := kctx.Run(appCtx); err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
