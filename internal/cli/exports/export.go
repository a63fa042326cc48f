package exports

import (
	"fmt"
	"time"

	"github.com/evanmoss/dailyq/internal/cli"
	"github.com/evanmoss/dailyq/internal/export"
)

// exporterFor returns the context's exporter, retargeted at out when the
// flag was given.
func exporterFor(ctx *cli.Context, out string) export.Exporter {
	e := ctx.Exporter
	if out != "" {
		e.Writer = export.DirWriter{Dir: out}
	}
	return e
}

type JSONCmd struct {
	Out string `help:"Directory to write the export into. Defaults to the configured export dir." optional:""`
}

func (c *JSONCmd) Run(ctx *cli.Context) error {
	uri, err := exporterFor(ctx, c.Out).ExportJSON(ctx.Diary.Entries(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to export entries as JSON: %w", err)
	}
	fmt.Printf("Exported %d entries to %s\n", len(ctx.Diary.Entries()), uri)
	return nil
}

type CSVCmd struct {
	Out string `help:"Directory to write the export into. Defaults to the configured export dir." optional:""`
}

func (c *CSVCmd) Run(ctx *cli.Context) error {
	uri, err := exporterFor(ctx, c.Out).ExportCSV(ctx.Diary.Entries(), time.Now())
	if err != nil {
		return fmt.Errorf("failed to export entries as CSV: %w", err)
	}
	fmt.Printf("Exported %d entries to %s\n", len(ctx.Diary.Entries()), uri)
	return nil
}
