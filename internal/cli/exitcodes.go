package cli

// Exit codes for CLI commands, following Unix conventions.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error (store errors, unexpected failures).
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	ExitNotFound = 3

	// ExitConflict indicates a uniqueness conflict (subdomain already taken).
	ExitConflict = 4

	// ExitValidation indicates input failed validation rules.
	ExitValidation = 5
)
