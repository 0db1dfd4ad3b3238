package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"weekboard/internal/board"
	"weekboard/internal/exitcode"
	"weekboard/internal/service"
)

// resolveBucket picks the bucket a command operates on: the --day flag, the
// day embedded in the reference, or Someday. Using both the flag and an
// embedded day is an error.
func resolveBucket(dayFlag string, ref TaskRef) (service.Bucket, error) {
	if dayFlag != "" {
		if ref.HasBucket {
			return "", errors.New("cannot use both --day and a day in the reference")
		}
		return service.ParseBucket(dayFlag)
	}
	if ref.HasBucket {
		return ref.Bucket, nil
	}
	return service.Someday, nil
}

// loadTask fetches one bucket into the board and returns the task at the
// 1-based position num.
func loadTask(ctx context.Context, b *board.Board, bucket service.Bucket, num int) (service.Task, error) {
	if err := b.FetchInitial(ctx, bucket); err != nil {
		return service.Task{}, err
	}

	tasks := b.Tasks(bucket)
	if num < 1 || num > len(tasks) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}

// reportError prints err in the CLI error style and returns the matching
// exit code.
func reportError(errOut io.Writer, err error) int {
	if errors.Is(err, board.ErrEmptyDescription) {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
