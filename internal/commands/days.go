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
	Register(&DaysCmd{})
}

// DaysCmd implements the days command: the eight buckets with their open
// task counts.
type DaysCmd struct{}

func (c *DaysCmd) Name() string       { return "days" }
func (c *DaysCmd) Aliases() []string  { return nil }
func (c *DaysCmd) Synopsis() string   { return "Print the days with open-task counts" }
func (c *DaysCmd) Usage() string      { return "weekboard days [common flags]" }
func (c *DaysCmd) NeedsBackend() bool { return true }

func (c *DaysCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DaysCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	b := board.New(svc)

	if failed := b.FetchAll(ctx); len(failed) > 0 {
		for _, bucket := range service.Buckets() {
			if err, ok := failed[bucket]; ok {
				fmt.Fprintf(errOut, "error: failed to fetch %s: %v\n", bucket, err)
			}
		}
		return exitcode.BackendError
	}

	for _, bucket := range service.Buckets() {
		open := 0
		for _, task := range b.Tasks(bucket) {
			if !task.Completed {
				open++
			}
		}
		output.FormatBucketCount(out, bucket, open)
	}
	return exitcode.Success
}
