//go:build !windows

package engine

import "os"

// RefreshEnvironmentPath exists only so this package builds on a
// non-Windows host for local development and testing; off Windows there is
// no registry-backed PATH to re-read, so this just echoes the process's own
// PATH.
func RefreshEnvironmentPath() (string, error) {
	return os.Getenv("PATH"), nil
}
