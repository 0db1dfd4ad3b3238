package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"weekboard/internal/config"
	"weekboard/internal/exitcode"
	"weekboard/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "weekboard help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  weekboard                                      List all tasks by day
  weekboard list [common flags] [--day <day>]    List tasks for one day
  weekboard add [common flags] [--day <day>] <description...>
  weekboard done [common flags] [--day <day>] <ref>
  weekboard rename [common flags] [--day <day>] <ref> <description...>
  weekboard mv [common flags] [--day <day>] <ref> <destination-day>
  weekboard rm [common flags] [--day <day>] <ref>
  weekboard days [common flags]
  weekboard login [common flags] [--token <token>]
  weekboard logout [common flags]
  weekboard help
  weekboard version

Task references name a day and a position, e.g. "mon2", "mon 2", or a bare
number for Someday. Days match by prefix: mon, tue, wed, thu, fri, sat,
sun, som.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
