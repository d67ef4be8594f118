package cli

import (
	"errors"
	"fmt"
	"log/slog"
)

// ExitError carries a process exit code out of a cobra RunE handler so that
// only main calls os.Exit.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the underlying message, or the exit status if there is none.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Code maps an error returned by a command to its exit code: 0 for nil,
// the carried code for an ExitError, 1 otherwise.
func Code(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return 1
}

// Finish logs err unless it only carries an exit code, and returns the code
// the process should exit with.
func Finish(logger *slog.Logger, err error) int {
	var exitErr *ExitError
	if err != nil && !errors.As(err, &exitErr) {
		logger.Error("command failed", slog.String("error", err.Error()))
	}

	return Code(err)
}
