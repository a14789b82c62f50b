package engine

import (
	_ "embed"
	"os"
	"path/filepath"
)

//go:embed resources/compat-shim.ps1
var compatShimScript []byte

// MaterializeShim writes the embedded Compatibility Shim script into the
// scratch directory so it can be dot-sourced by the same interpreter
// invocation that runs a foreign script. It is only ever injected for
// foreign-ecosystem scripts, never for native ones.
func MaterializeShim(scratch *ScratchPaths) (string, error) {
	path := filepath.Join(scratch.Root(), ".compat-shim.ps1")
	if err := os.WriteFile(path, compatShimScript, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
