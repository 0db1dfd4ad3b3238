package commands

import (
	"context"
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
	Register(&RenameCmd{})
}

// RenameCmd implements the rename command.
type RenameCmd struct {
	day string
}

// SetDay sets the day (for testing).
func (c *RenameCmd) SetDay(day string) {
	c.day = day
}

func (c *RenameCmd) Name() string       { return "rename" }
func (c *RenameCmd) Aliases() []string  { return []string{"edit"} }
func (c *RenameCmd) Synopsis() string   { return "Rename a task" }
func (c *RenameCmd) Usage() string      { return "weekboard rename [--day <day>] <ref> <description...>" }
func (c *RenameCmd) NeedsBackend() bool { return true }

func (c *RenameCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.StringVar(&c.day, "d", "", "")
}

func (c *RenameCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}

	// The reference consumed one or two leading args; the rest is the new
	// description.
	description := strings.Join(args[ref.Consumed:], " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	bucket, err := resolveBucket(c.day, ref)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	b := board.New(svc)
	task, err := loadTask(ctx, b, bucket, ref.TaskNum)
	if err != nil {
		if strings.Contains(err.Error(), "out of range") {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return reportError(errOut, err)
	}

	if err := b.Update(ctx, task.ID, service.TaskPatch{Description: &description}); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
