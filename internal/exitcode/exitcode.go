// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes used by every command.
const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown day, empty
	// description, ref out of range).
	UserError = 1

	// AuthError indicates a token/config error.
	AuthError = 2

	// BackendError indicates a store/network error.
	BackendError = 3
)
