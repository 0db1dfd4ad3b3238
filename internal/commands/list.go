package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"weekboard/internal/board"
	"weekboard/internal/config"
	"weekboard/internal/exitcode"
	"weekboard/internal/output"
	"weekboard/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `weekboard` (no args) and `weekboard list [--day <day>]`.
type ListCmd struct {
	day string
}

// SetDay sets the day filter (for testing).
func (c *ListCmd) SetDay(day string) {
	c.day = day
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "weekboard list [--day <day>]" }
func (c *ListCmd) NeedsBackend() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.day, "day", "", "")
	fs.StringVar(&c.day, "d", "", "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	b := board.New(svc)

	if c.day != "" {
		return c.listOne(ctx, cfg, b, out, errOut)
	}
	return c.listAll(ctx, cfg, b, out, errOut)
}

// listAll fetches every bucket concurrently and prints the non-empty ones
// in board order. Buckets that failed to fetch are reported after the
// successful ones.
func (c *ListCmd) listAll(ctx context.Context, cfg *config.Config, b *board.Board, out, errOut io.Writer) int {
	failed := b.FetchAll(ctx)

	hasAnyTasks := false
	for _, bucket := range service.Buckets() {
		tasks := b.Tasks(bucket)
		if len(tasks) == 0 {
			continue
		}

		output.FormatBucketHeader(out, bucket)
		for i, task := range tasks {
			output.FormatTask(out, i+1, task)
		}
		hasAnyTasks = true
	}

	if len(failed) > 0 {
		for _, bucket := range service.Buckets() {
			if err, ok := failed[bucket]; ok {
				fmt.Fprintf(errOut, "error: failed to fetch %s: %v\n", bucket, err)
			}
		}
		return exitcode.BackendError
	}

	if !hasAnyTasks && !cfg.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

// listOne fetches and prints a single bucket (weekboard list --day <day>).
func (c *ListCmd) listOne(ctx context.Context, cfg *config.Config, b *board.Board, out, errOut io.Writer) int {
	bucket, err := service.ParseBucket(c.day)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := b.FetchInitial(ctx, bucket); err != nil {
		return reportError(errOut, err)
	}

	// Print the section even if empty.
	output.FormatBucketHeader(out, bucket)
	for i, task := range b.Tasks(bucket) {
		output.FormatTask(out, i+1, task)
	}
	return exitcode.Success
}
