package cli

import "fmt"

// Exit codes for the chlog CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a generic runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 2

	// ExitConfigError indicates invalid or missing configuration
	ExitConfigError = 3

	// ExitSourceNotFound indicates the changelog file is missing or unreadable
	ExitSourceNotFound = 4

	// ExitNoChanges indicates a release was attempted with an empty Unreleased section
	ExitNoChanges = 5

	// ExitMalformed indicates the changelog does not follow the expected conventions
	ExitMalformed = 6
)

// ExitError carries a process exit code alongside the underlying error.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// Unwrap exposes the underlying error for errors.As chains.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a bare ExitError for the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// exitWith pairs an error with the exit code it should produce.
func exitWith(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}
