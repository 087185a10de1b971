// Package exitcode defines exit codes for the CLI and session commands.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, malformed id, unknown task).
	UserError = 1

	// ConfigError indicates an unreadable or malformed configuration.
	ConfigError = 2
)
