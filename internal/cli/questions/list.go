package questions

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanmoss/dailyq/internal/cli"
)

var (
	activeStyle   = lipgloss.NewStyle().Bold(true)
	inactiveStyle = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	metaStyle     = lipgloss.NewStyle().Faint(true)
)

type ListCmd struct {
	Active bool `help:"Only show active questions, in display order."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	questions := ctx.Questions.All()
	if c.Active {
		questions = ctx.Questions.ActiveQuestions()
	}
	if len(questions) == 0 {
		fmt.Println("No questions. Seed the defaults with 'dailyq question reset'.")
		return nil
	}

	for _, q := range questions {
		style := activeStyle
		if !q.IsActive {
			style = inactiveStyle
		}
		fmt.Printf("%2d. %s  %s\n", q.Order, style.Render(q.Text),
			metaStyle.Render(fmt.Sprintf("[%s] id=%s", q.Type, q.ID)))
	}
	return nil
}
