package entries

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/dateutil"
	"github.com/evanmoss/dailyq/internal/models"
)

type ShowCmd struct {
	Date string `arg:"" help:"Date of the entry (YYYY-MM-DD). Defaults to today." optional:""`
	ID   string `help:"Look the entry up by ID instead of date." optional:""`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	var entry models.DiaryEntry
	var ok bool

	if c.ID != "" {
		entry, ok = ctx.Diary.EntryByID(c.ID)
		if !ok {
			return fmt.Errorf("no entry with id %s", c.ID)
		}
	} else {
		date := c.Date
		if date == "" {
			date = dateutil.Today()
		} else if _, err := dateutil.ParseDate(date); err != nil {
			return err
		}
		entry, ok = ctx.Diary.EntryByDate(date)
		if !ok {
			return fmt.Errorf("no entry for %s", date)
		}
	}

	fmt.Printf("%s\n", dateStyle.Render(entry.Date))
	fmt.Printf("%s\n\n", faintStyle.Render(fmt.Sprintf("id=%s  created=%s  updated=%s", entry.ID, entry.CreatedAt, entry.UpdatedAt)))
	if len(entry.Answers) == 0 {
		fmt.Println("(no answers)")
		return nil
	}
	for _, a := range entry.Answers {
		fmt.Printf("%s\n  %s\n", dateStyle.Render(a.QuestionText), a.Value.String())
	}
	return nil
}
