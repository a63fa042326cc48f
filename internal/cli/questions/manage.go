package questions

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"ID of the question to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	ctx.Questions.DeleteQuestion(ctx.Ctx, c.ID)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Println("Question deleted. Existing diary entries keep their answer snapshots.")
	return nil
}

type ToggleCmd struct {
	ID string `arg:"" help:"ID of the question to toggle."`
}

func (c *ToggleCmd) Run(ctx *cli.Context) error {
	ctx.Questions.ToggleQuestionActive(ctx.Ctx, c.ID)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Println("Question toggled.")
	return nil
}

type ReorderCmd struct {
	IDs []string `arg:"" help:"Every question ID in the desired display order."`
}

// Run rewrites display order to match the given ID sequence. The list must
// name every question: anything left out drops to order 0 and sorts first.
func (c *ReorderCmd) Run(ctx *cli.Context) error {
	known := make(map[string]bool, len(ctx.Questions.All()))
	for _, q := range ctx.Questions.All() {
		known[q.ID] = true
	}
	for _, id := range c.IDs {
		if !known[id] {
			return fmt.Errorf("no question with id %s", id)
		}
	}

	ctx.Questions.ReorderQuestions(ctx.Ctx, c.IDs)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Println("Questions reordered.")
	return nil
}

type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	ctx.Questions.ResetToDefaults(ctx.Ctx)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Println("Questions reset to the default set.")
	return nil
}
