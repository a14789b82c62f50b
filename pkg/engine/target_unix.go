//go:build !windows

package engine

import "syscall"

// systemDriveRoot and EnumerateVolumes below exist only so this package
// builds on a non-Windows host for local development and testing; the
// shipped binary targets Windows only, per the engine's scope.

func systemDriveRoot() string {
	return `C:\`
}

// EnumerateVolumes returns a single synthetic volume backed by the real
// root filesystem's statfs, so --volinfo is exercisable off-Windows.
func EnumerateVolumes() ([]Volume, error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs("/", &stat); err != nil {
		return nil, err
	}
	total := int64(stat.Blocks) * int64(stat.Bsize)
	available := int64(stat.Bavail) * int64(stat.Bsize)
	return []Volume{{Name: `C:\`, Total: total, Available: available}}, nil
}
