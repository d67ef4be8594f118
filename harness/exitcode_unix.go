//go:build unix

package harness

import (
	"os"
	"syscall"
)

// exitCode maps a finished process to a shell-style status: the exit code,
// or 128+signal when the child was killed.
func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}

	return state.ExitCode()
}
