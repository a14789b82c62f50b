// Package wenv centralizes the small set of environment variables the
// engine consults outside of its CLI flags.
package wenv

import "os"

// LogLevel returns the configured log level, defaulting to warn.
func LogLevel() string {
	if v := os.Getenv("WININSTALL_LOG_LEVEL"); v != "" {
		return v
	}
	return "warn"
}

// JSONLog reports whether structured JSON logging was requested.
func JSONLog() bool {
	return os.Getenv("WININSTALL_JSON_LOG") == "1"
}

// Interpreter returns the shell interpreter binary to spawn for scripts,
// defaulting to powershell.exe.
func Interpreter() string {
	if v := os.Getenv("WININSTALL_INTERPRETER"); v != "" {
		return v
	}
	return "powershell.exe"
}
