package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// systemRoots returns the small allow-list of system-owned roots that
// require administrator privileges to write to: the program-files roots,
// the Windows directory and the program-data directory (each including
// everything nested under it), and the system drive root itself (the root
// only, not every path on that drive).
func systemRoots() []string {
	var roots []string
	add := func(v string) {
		if v != "" {
			roots = append(roots, filepath.Clean(v))
		}
	}
	add(os.Getenv("ProgramFiles"))
	add(os.Getenv("ProgramFiles(x86)"))
	add(os.Getenv("ProgramW6432"))
	add(os.Getenv("WinDir"))
	add(os.Getenv("ProgramData"))
	add(systemDriveRoot())
	return roots
}

// RequiresElevation decides whether the planned work needs administrator
// rights: the resolved install directory falls under a system-owned root,
// or any script is going to run (scripts are always presumed to require
// elevation, since they may touch arbitrary state).
func RequiresElevation(resolvedInstallDir string, anyScriptPresent bool) (bool, string) {
	if anyScriptPresent {
		return true, "a pre- or post-install script is present"
	}
	if resolvedInstallDir == "" {
		return false, ""
	}
	clean := filepath.Clean(resolvedInstallDir)
	driveRoot := filepath.Clean(systemDriveRoot())
	for _, root := range systemRoots() {
		if root == driveRoot {
			if strings.EqualFold(clean, root) {
				return true, "install path is the system drive root " + root
			}
			continue
		}
		if pathIsUnder(clean, root) {
			return true, "install path is under system root " + root
		}
	}
	return false, ""
}

func pathIsUnder(path, root string) bool {
	if root == "" {
		return false
	}
	path = strings.ToLower(path)
	root = strings.ToLower(strings.TrimSuffix(root, string(filepath.Separator)))
	return path == root || strings.HasPrefix(path, root+string(filepath.Separator))
}

// CheckPrivilege is the Privilege Gate entry point: it aborts with a
// NeedsElevation error before any side effect if elevation is required
// but not held. It does not attempt to self-elevate.
func CheckPrivilege(isAdmin bool, resolvedInstallDir string, anyScriptPresent bool) error {
	needed, reason := RequiresElevation(resolvedInstallDir, anyScriptPresent)
	if needed && !isAdmin {
		path := resolvedInstallDir
		if path == "" {
			path = reason
		}
		return NewNeedsElevationError(path, reason)
	}
	return nil
}
