package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"weekboard/internal/board"
	"weekboard/internal/config"
	"weekboard/internal/exitcode"
	"weekboard/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	day string
}

// SetDay sets the target day (for testing).
func (c *AddCmd) SetDay(day string) {
	c.day = day
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "weekboard add [--day <day>] <description...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.StringVar(&c.day, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}
	description := strings.Join(args, " ")

	bucket := service.Someday
	if c.day != "" {
		var err error
		bucket, err = service.ParseBucket(c.day)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}

	b := board.New(svc)
	if _, err := b.Create(ctx, bucket, description); err != nil {
		if errors.Is(err, board.ErrEmptyDescription) {
			fmt.Fprintln(errOut, "error: description required")
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
