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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. It toggles completion: running it on
// a completed task marks the task open again.
type DoneCmd struct {
	day string
}

// SetDay sets the day (for testing).
func (c *DoneCmd) SetDay(day string) {
	c.day = day
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string   { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string      { return "weekboard done [--day <day>] <ref>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.StringVar(&c.day, "d", "", "")
}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args)
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
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

	completed := !task.Completed
	if err := b.Update(ctx, task.ID, service.TaskPatch{Completed: &completed}); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
