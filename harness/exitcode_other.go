//go:build !unix

package harness

import "os"

func exitCode(state *os.ProcessState) int {
	return state.ExitCode()
}
