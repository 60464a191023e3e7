package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"bdcal/internal/config"
	"bdcal/internal/exitcode"
	"bdcal/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "bdcal help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, clients *service.Clients, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  bdcal sync [common flags] [--dry-run]   Register birthday events for every sheet row
  bdcal register ...                      Alias for sync
  bdcal preview [common flags]            Show what sync would do, without writing
  bdcal check ...                         Alias for preview
  bdcal calendars [common flags]          List available calendars
  bdcal login [common flags]
  bdcal logout [common flags]
  bdcal help
  bdcal version

Common flags:
  --config <dir>        Override config directory
  --spreadsheet <id>    Override spreadsheet_id from settings.yaml
  --sheet <name>        Override sheet_name from settings.yaml
  --calendar <id>       Override calendar_id from settings.yaml
  --quiet               Suppress informational output
  --debug               Print debug logs to stderr
`
