//go:build !unix

package harness

import "os"

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir() && info.Mode().Perm()&0o111 != 0
}
