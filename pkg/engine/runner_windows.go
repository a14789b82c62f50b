//go:build windows

package engine

import (
	"os/exec"
	"syscall"
)

// applyHiddenWindow suppresses the console flash a spawned powershell.exe
// would otherwise produce.
func applyHiddenWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
