// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"weekboard/internal/service"
)

// BucketSeparator is the separator line for bucket sections.
const BucketSeparator = "------------"

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }] {DESCRIPTION}\n" (4-wide right-aligned number,
// checkbox, description)
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, box, normalizeDescription(task.Description))
}

// FormatBucketHeader formats a bucket section header.
func FormatBucketHeader(w io.Writer, bucket service.Bucket) {
	fmt.Fprintln(w, BucketSeparator)
	fmt.Fprintln(w, string(bucket))
	fmt.Fprintln(w, BucketSeparator)
}

// FormatBucketCount formats a bucket name with its open-task count for the
// days command.
func FormatBucketCount(w io.Writer, bucket service.Bucket, open int) {
	fmt.Fprintf(w, "%-10s %d\n", string(bucket), open)
}

// normalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
