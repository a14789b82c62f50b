//go:build !windows

package engine

import "os/exec"

// applyHiddenWindow is a no-op off Windows, where there is no console
// window to hide; kept so the package builds for local development.
func applyHiddenWindow(cmd *exec.Cmd) {}
