package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"bdcal/internal/config"
	"bdcal/internal/exitcode"
	"bdcal/internal/output"
	"bdcal/internal/service"
)

func init() {
	Register(&CalendarsCmd{})
}

// CalendarsCmd lists the user's calendars, to help pick a calendar_id
// for settings.yaml.
type CalendarsCmd struct{}

func (c *CalendarsCmd) Name() string      { return "calendars" }
func (c *CalendarsCmd) Aliases() []string { return nil }
func (c *CalendarsCmd) Synopsis() string  { return "List available calendars" }
func (c *CalendarsCmd) Usage() string     { return "bdcal calendars [common flags]" }
func (c *CalendarsCmd) NeedsAuth() bool   { return true }

func (c *CalendarsCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CalendarsCmd) Run(ctx context.Context, cfg *config.Config, clients *service.Clients, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	cals, err := clients.Calendar.ListCalendars(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	for _, cal := range cals {
		output.FormatCalendarName(out, cal)
	}
	return exitcode.Success
}
