package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"bdcal/internal/config"
	"bdcal/internal/engine"
	"bdcal/internal/exitcode"
	"bdcal/internal/output"
	"bdcal/internal/service"
)

func init() {
	Register(&PreviewCmd{})
}

// PreviewCmd reports how each sheet row would be processed without
// touching the calendar. Reminder offsets are shown for the
// current-year event.
type PreviewCmd struct{}

func (c *PreviewCmd) Name() string      { return "preview" }
func (c *PreviewCmd) Aliases() []string { return []string{"check"} }
func (c *PreviewCmd) Synopsis() string  { return "Show what sync would do, without writing" }
func (c *PreviewCmd) Usage() string     { return "bdcal preview [common flags]" }
func (c *PreviewCmd) NeedsAuth() bool   { return true }

func (c *PreviewCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PreviewCmd) Run(ctx context.Context, cfg *config.Config, clients *service.Clients, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	rows, err := clients.Sheet.Rows(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
	if len(rows) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no rows to process")
		}
		return exitcode.Success
	}

	return runPreview(cfg, rows, out)
}

// runPreview is shared by the preview command and sync --dry-run.
func runPreview(cfg *config.Config, rows [][]string, out io.Writer) int {
	now := engine.RealClock{}.Now()
	loc := now.Location()

	for i, row := range rows {
		plan := engine.PlanRow(row, i+2)
		var offsets []engine.TierOffset
		if plan.Disposition == engine.RowReady {
			anchor := plan.Date.Date(now.Year(), loc)
			offsets = engine.TierOffsets(anchor, plan.TierTimes)
		}
		output.FormatPlanLine(out, plan, offsets)
	}
	return exitcode.Success
}
