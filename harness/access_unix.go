//go:build unix

package harness

import "golang.org/x/sys/unix"

func isExecutable(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
