package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/models"
)

// parseClock parses an HH:MM string into hour and minute. Range checking
// belongs to models.NewReminderTime; this only splits the syntax.
func parseClock(s string) (int, int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return hour, minute, nil
}

type ReminderAddCmd struct {
	Time string `arg:"" help:"Reminder time as HH:MM."`
}

func (c *ReminderAddCmd) Run(ctx *cli.Context) error {
	hour, minute, err := parseClock(c.Time)
	if err != nil {
		return err
	}
	t, err := models.NewReminderTime(hour, minute)
	if err != nil {
		return err
	}

	ctx.Settings.AddReminderTime(ctx.Ctx, t)
	if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
		return err
	}
	ctx.SyncReminders()
	fmt.Printf("Added reminder at %02d:%02d.\n", hour, minute)
	return nil
}

type ReminderListCmd struct{}

func (c *ReminderListCmd) Run(ctx *cli.Context) error {
	times := ctx.Settings.Current().ReminderTimes
	if len(times) == 0 {
		fmt.Println("No reminders. Add one with 'dailyq reminder add HH:MM'.")
		return nil
	}
	for i, t := range times {
		state := "enabled"
		if !t.IsEnabled {
			state = "disabled"
		}
		fmt.Printf("%2d. %02d:%02d  (%s)\n", i, t.Hour, t.Minute, state)
	}
	return nil
}

type ReminderRemoveCmd struct {
	Index int `arg:"" help:"Index of the reminder to remove (see 'dailyq reminder list')."`
}

func (c *ReminderRemoveCmd) Run(ctx *cli.Context) error {
	ctx.Settings.RemoveReminderTime(ctx.Ctx, c.Index)
	if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
		return err
	}
	ctx.SyncReminders()
	fmt.Println("Reminder removed.")
	return nil
}

type ReminderToggleCmd struct {
	Index int `arg:"" help:"Index of the reminder to toggle."`
}

func (c *ReminderToggleCmd) Run(ctx *cli.Context) error {
	ctx.Settings.ToggleReminderTime(ctx.Ctx, c.Index)
	if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
		return err
	}
	ctx.SyncReminders()
	fmt.Println("Reminder toggled.")
	return nil
}

type ReminderUpdateCmd struct {
	Index int    `arg:"" help:"Index of the reminder to update."`
	Time  string `arg:"" help:"New time as HH:MM."`
}

func (c *ReminderUpdateCmd) Run(ctx *cli.Context) error {
	hour, minute, err := parseClock(c.Time)
	if err != nil {
		return err
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid time %q, expected HH:MM with hour 0-23 and minute 0-59", c.Time)
	}

	times := ctx.Settings.Current().ReminderTimes
	if c.Index < 0 || c.Index >= len(times) {
		return fmt.Errorf("reminder time index out of range: %d", c.Index)
	}
	// Keep the stable ID and enabled state; only the clock moves.
	updated := times[c.Index]
	updated.Hour = hour
	updated.Minute = minute

	ctx.Settings.UpdateReminderTime(ctx.Ctx, c.Index, updated)
	if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
		return err
	}
	ctx.SyncReminders()
	fmt.Printf("Reminder %d updated to %02d:%02d.\n", c.Index, hour, minute)
	return nil
}
