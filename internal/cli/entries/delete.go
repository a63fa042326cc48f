package entries

import (
	"fmt"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/dateutil"
)

type DeleteCmd struct {
	Date string `arg:"" help:"Date of the entry to delete (YYYY-MM-DD)." optional:""`
	ID   string `help:"Delete the entry with this ID instead." optional:""`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		if c.Date == "" {
			return fmt.Errorf("specify a date or --id")
		}
		if _, err := dateutil.ParseDate(c.Date); err != nil {
			return err
		}
		entry, ok := ctx.Diary.EntryByDate(c.Date)
		if !ok {
			return fmt.Errorf("no entry for %s", c.Date)
		}
		id = entry.ID
	}

	ctx.Diary.DeleteEntry(ctx.Ctx, id)
	if err := cli.StoreErr(ctx.Diary.Err()); err != nil {
		return err
	}
	fmt.Println("Entry deleted.")
	return nil
}
