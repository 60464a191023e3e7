package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"bdcal/internal/config"
	"bdcal/internal/engine"
	"bdcal/internal/exitcode"
	"bdcal/internal/service"
)

func init() {
	Register(&SyncCmd{})
}

// SyncCmd implements the sync command: the full birthday registration
// run against the configured sheet and calendar.
type SyncCmd struct {
	dryRun bool
}

func (c *SyncCmd) Name() string      { return "sync" }
func (c *SyncCmd) Aliases() []string { return []string{"register"} }
func (c *SyncCmd) Synopsis() string  { return "Register birthday events for every sheet row" }
func (c *SyncCmd) Usage() string     { return "bdcal sync [common flags] [--dry-run]" }
func (c *SyncCmd) NeedsAuth() bool   { return true }

func (c *SyncCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.dryRun, "dry-run", false, "")
}

func (c *SyncCmd) Run(ctx context.Context, cfg *config.Config, clients *service.Clients, args []string, out, errOut io.Writer) int {
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

	if c.dryRun {
		return runPreview(cfg, rows, out)
	}

	runner := &engine.Runner{
		Calendar: clients.Calendar,
		Clock:    engine.RealClock{},
		Log:      NewLogger(cfg, errOut),
	}

	statuses, sum := runner.Run(ctx, rows)

	// The calendar mutations above stand regardless of what happens to
	// the status write; a failure here is surfaced, not rolled back.
	if err := clients.Sheet.WriteStatuses(ctx, statuses); err != nil {
		fmt.Fprintf(errOut, "error: failed to write statuses back to the sheet: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "done: %d rows, %d registered, %d skipped, %d unparseable, %d failed\n",
			sum.Rows, sum.Registered, sum.Skipped, sum.ParseFails, sum.Failed)
	}
	if sum.Failed > 0 || sum.ParseFails > 0 {
		fmt.Fprintln(errOut, "some rows were not registered; see the log above")
	}
	return exitcode.Success
}

// NewLogger builds the run's diagnostic logger. Debug level with
// --debug, warnings only with --quiet, info otherwise.
func NewLogger(cfg *config.Config, errOut io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	} else if cfg.Quiet {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
}
