// Package harness runs a benchmark command as a single child process,
// optionally pinned to one CPU core and wrapped with /usr/bin/time -v.
package harness

import "time"

// Result holds the outcome of one child process execution.
type Result struct {
	Argv     []string
	ExitCode int
	Elapsed  time.Duration
}
