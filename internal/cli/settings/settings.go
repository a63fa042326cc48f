package settings

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	DarkMode             *bool `help:"Enable or disable dark mode."`
	NotificationsEnabled *bool `help:"Enable or disable notifications."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings := ctx.Settings.Current()

	if c.List {
		fmt.Println("Current Settings:")
		fmt.Printf("  Dark Mode:             %v\n", settings.IsDarkMode)
		fmt.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("  Reminder Times:        %d (%d enabled)\n",
			len(settings.ReminderTimes), len(ctx.Settings.EnabledReminderTimes()))
		return nil
	}

	updated := false
	if c.DarkMode != nil {
		ctx.Settings.SetDarkMode(ctx.Ctx, *c.DarkMode)
		if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
			return err
		}
		updated = true
	}
	if c.NotificationsEnabled != nil {
		ctx.Settings.SetNotificationsEnabled(ctx.Ctx, *c.NotificationsEnabled)
		if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
			return err
		}
		ctx.SyncReminders()
		updated = true
	}

	if updated {
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}
	return nil
}
