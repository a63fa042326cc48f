package questions

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/models"
)

type AddCmd struct {
	Text    string   `arg:"" help:"Question text."`
	Type    string   `help:"Question type: text, multiline, rating, or choice." default:"text"`
	Options []string `help:"Choices for a choice question." optional:""`
	Order   int      `help:"Display order. Defaults to after the last question." default:"0"`
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	typ := models.QuestionType(c.Type)
	if err := models.ValidateQuestionType(typ); err != nil {
		return err
	}
	if typ == models.QuestionChoice && len(c.Options) == 0 {
		return fmt.Errorf("a choice question needs at least one --options value")
	}

	order := c.Order
	if order == 0 {
		for _, q := range ctx.Questions.All() {
			if q.Order >= order {
				order = q.Order + 1
			}
		}
		if order == 0 {
			order = 1
		}
	}

	question := models.NewQuestion(c.Text, typ, order, c.Options)
	ctx.Questions.AddQuestion(ctx.Ctx, question)
	if err := cli.StoreErr(ctx.Questions.Err()); err != nil {
		return err
	}
	fmt.Printf("Added question %s.\n", question.ID)
	return nil
}
