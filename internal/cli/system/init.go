package system

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
)

type InitCmd struct{}

// Run seeds first-run state: loading the question store persists the
// default question set when storage is empty, and loading settings adopts
// the defaults. Running init on an initialized store is harmless.
func (c *InitCmd) Run(ctx *cli.Context) error {
	ctx.Questions.LoadQuestions(ctx.Ctx)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return fmt.Errorf("failed to initialize questions: %w", err)
	}
	ctx.Settings.LoadSettings(ctx.Ctx)
	if err := cli.StoreErr(ctx.Settings.Err()); err != nil {
		return fmt.Errorf("failed to initialize settings: %w", err)
	}

	fmt.Printf("Initialized dailyq storage (%s backend at %s).\n", ctx.Config.Backend, ctx.Config.Path)
	fmt.Printf("Seeded %d questions. Write your first entry with 'dailyq today'.\n", len(ctx.Questions.All()))
	return nil
}
