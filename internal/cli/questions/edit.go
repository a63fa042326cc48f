package questions

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/models"
)

type EditCmd struct {
	ID      string   `arg:"" help:"ID of the question to edit."`
	Text    *string  `help:"New question text." optional:""`
	Type    *string  `help:"New question type." optional:""`
	Options []string `help:"Replacement choices for a choice question." optional:""`
	Order   *int     `help:"New display order." optional:""`
}

func (c *EditCmd) Run(ctx *cli.Context) error {
	var question models.Question
	found := false
	for _, q := range ctx.Questions.All() {
		if q.ID == c.ID {
			question = q
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no question with id %s", c.ID)
	}

	updated := false
	if c.Text != nil {
		question.Text = *c.Text
		updated = true
	}
	if c.Type != nil {
		typ := models.QuestionType(*c.Type)
		if err := models.ValidateQuestionType(typ); err != nil {
			return err
		}
		question.Type = typ
		updated = true
	}
	if len(c.Options) > 0 {
		question.Options = c.Options
		updated = true
	}
	if c.Order != nil {
		question.Order = *c.Order
		updated = true
	}
	if !updated {
		fmt.Println("No changes specified.")
		return nil
	}

	ctx.Questions.UpdateQuestion(ctx.Ctx, question)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Println("Question updated.")
	return nil
}
