package entries

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/dateutil"
)

var (
	dateStyle  = lipgloss.NewStyle().Bold(true)
	todayStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type ListCmd struct {
	Limit int `help:"Show at most this many entries (0 = all)." default:"0"`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	entries := ctx.Diary.Entries()
	if len(entries) == 0 {
		fmt.Println("No diary entries yet. Write one with 'dailyq today'.")
		return nil
	}

	shown := 0
	for i := len(entries) - 1; i >= 0; i-- { // newest first
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		e := entries[i]
		style := dateStyle
		marker := ""
		if dateutil.IsTodayString(e.Date) {
			style = todayStyle
			marker = " (today)"
		}
		fmt.Printf("%s%s  %s\n",
			style.Render(e.Date),
			marker,
			faintStyle.Render(fmt.Sprintf("%d answers  id=%s", len(e.Answers), e.ID)))
		shown++
	}
	return nil
}
