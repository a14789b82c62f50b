//go:build windows

package engine

import (
	"os"
	"syscall"
	"unsafe"
)

var (
	kernel32                = syscall.NewLazyDLL("kernel32.dll")
	procGetDiskFreeSpaceExW = kernel32.NewProc("GetDiskFreeSpaceExW")
	procGetLogicalDrives    = kernel32.NewProc("GetLogicalDrives")
)

func systemDriveRoot() string {
	if drive := os.Getenv("SystemDrive"); drive != "" {
		return drive + `\`
	}
	return `C:\`
}

// EnumerateVolumes lists every logical drive letter present and its
// total/available byte counts, for --volinfo.
func EnumerateVolumes() ([]Volume, error) {
	bitmask, _, _ := procGetLogicalDrives.Call()

	var volumes []Volume
	for i := 0; i < 26; i++ {
		if bitmask&(1<<uint(i)) == 0 {
			continue
		}
		letter := string(rune('A' + i))
		root := letter + `:\`

		total, avail, err := diskSpace(root)
		if err != nil {
			continue
		}
		volumes = append(volumes, Volume{Name: root, Total: total, Available: avail})
	}
	return volumes, nil
}

func diskSpace(path string) (total int64, available int64, err error) {
	pathPtr, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes int64
	ret, _, callErr := procGetDiskFreeSpaceExW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(unsafe.Pointer(&freeBytesAvailable)),
		uintptr(unsafe.Pointer(&totalBytes)),
		uintptr(unsafe.Pointer(&totalFreeBytes)),
	)
	if ret == 0 {
		return 0, 0, callErr
	}
	return totalBytes, freeBytesAvailable, nil
}
