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
	Register(&MvCmd{})
}

// MvCmd implements the mv command: relocate a task to another bucket.
// Moving a task to the bucket it is already in is a confirmed no-op; no
// store call is made.
type MvCmd struct {
	day string
}

// SetDay sets the source day (for testing).
func (c *MvCmd) SetDay(day string) {
	c.day = day
}

func (c *MvCmd) Name() string       { return "mv" }
func (c *MvCmd) Aliases() []string  { return []string{"move"} }
func (c *MvCmd) Synopsis() string   { return "Move a task to another day" }
func (c *MvCmd) Usage() string      { return "weekboard mv [--day <day>] <ref> <destination-day>" }
func (c *MvCmd) NeedsBackend() bool { return true }

func (c *MvCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.StringVar(&c.day, "d", "", "")
}

func (c *MvCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: task reference and destination day required")
		return exitcode.UserError
	}

	dest, err := service.ParseBucket(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	ref, err := ParseTaskRef(args[:len(args)-1])
	if err != nil {
		if err == ErrTaskRefRequired {
			fmt.Fprintln(errOut, "error: task reference required")
		} else {
			fmt.Fprintf(errOut, "error: %v\n", err)
		}
		return exitcode.UserError
	}
	if ref.Consumed != len(args)-1 {
		fmt.Fprintf(errOut, "error: invalid task reference: %s\n", strings.Join(args[:len(args)-1], " "))
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

	if err := b.Update(ctx, task.ID, service.TaskPatch{Bucket: &dest}); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
