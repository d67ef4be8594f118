package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// Runner launches a single child process with the given standard streams.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// NewRunner creates a Runner. A nil stdin gives the child /dev/null;
// passing *os.File values lets the child inherit them directly.
func NewRunner(
	stdin io.Reader,
	stdout, stderr io.Writer,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}
}

// Run announces the command line on Stdout, runs it to completion and
// returns its exit status. A non-zero exit is not an error; only a failure
// to start the process is.
func (r *Runner) Run(ctx context.Context, cfg CommandConfig) (*Result, error) {
	argv := cfg.Argv()

	if _, err := fmt.Fprintln(
		r.Stdout, "[harness] exec:", strings.Join(argv, " "),
	); err != nil {
		return nil, fmt.Errorf("write exec line: %w", err)
	}

	cmd := exec.CommandContext(ctx, cfg.Binary, cfg.Args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	r.Logger.DebugContext(ctx, "starting command",
		slog.Any("argv", argv),
	)

	start := time.Now()

	err := cmd.Run()
	elapsed := time.Since(start)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("run %s: %w", cfg.Binary, err)
	}

	result := &Result{
		Argv:     argv,
		ExitCode: exitCode(cmd.ProcessState),
		Elapsed:  elapsed,
	}

	r.Logger.DebugContext(ctx, "command finished",
		slog.Int("exit_code", result.ExitCode),
		slog.Duration("wall_time", elapsed),
	)

	return result, nil
}
