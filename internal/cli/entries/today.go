package entries

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/dateutil"
	"github.com/evanmoss/dailyq/internal/models"
)

type TodayCmd struct {
	Date string `help:"Date to write the entry for (YYYY-MM-DD). Defaults to today." optional:""`
}

// Run walks the active questions in display order as an interactive form
// and saves the answers as the day's entry. Question text and type are
// snapshotted into the answers, so later question edits never rewrite
// history.
func (c *TodayCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		date = dateutil.Today()
	} else if _, err := dateutil.ParseDate(date); err != nil {
		return err
	}

	questions := ctx.Questions.ActiveQuestions()
	if len(questions) == 0 {
		return errors.New("no active questions; add one with 'dailyq question add' or run 'dailyq question reset'")
	}

	texts := make([]string, len(questions))
	ratings := make([]int, len(questions))

	fields := make([]huh.Field, 0, len(questions))
	for i, q := range questions {
		switch q.Type {
		case models.QuestionRating:
			ratings[i] = 3
			fields = append(fields, huh.NewSelect[int]().
				Title(q.Text).
				Options(huh.NewOptions(1, 2, 3, 4, 5)...).
				Value(&ratings[i]))
		case models.QuestionChoice:
			fields = append(fields, huh.NewSelect[string]().
				Title(q.Text).
				Options(huh.NewOptions(q.Options...)...).
				Value(&texts[i]))
		case models.QuestionMultiline:
			fields = append(fields, huh.NewText().
				Title(q.Text).
				Value(&texts[i]))
		default:
			fields = append(fields, huh.NewInput().
				Title(q.Text).
				Value(&texts[i]))
		}
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return fmt.Errorf("diary input aborted: %w", err)
	}

	answers := make([]models.DiaryAnswer, len(questions))
	for i, q := range questions {
		value := models.Text(texts[i])
		if q.Type == models.QuestionRating {
			value = models.Rating(ratings[i])
		}
		answers[i] = models.DiaryAnswer{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Value:        value,
			Type:         models.AnswerTypeFor(q.Type),
		}
	}

	if entry, ok := ctx.Diary.EntryByDate(date); ok {
		entry.Answers = answers
		entry.Touch()
		ctx.Diary.UpdateEntry(ctx.Ctx, entry)
	} else {
		entry = models.NewDiaryEntry(date)
		entry.Answers = answers
		ctx.Diary.AddEntry(ctx.Ctx, entry)
	}
	if err := cli.StoreErr(ctx.Diary.Err()); err != nil {
		return err
	}

	fmt.Printf("Saved diary entry for %s.\n", date)
	return nil
}
