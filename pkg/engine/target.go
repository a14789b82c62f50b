package engine

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolveTargetRoot translates a --target spec string into an absolute
// root directory per the lookup table. It produces only the root; joining
// against install_location happens in the Classifier (see joinInstallLocation).
func ResolveTargetRoot(spec string) (string, error) {
	switch {
	case spec == "/" || spec == `\`:
		return systemDriveRoot(), nil

	case spec == "CurrentUserHomeDirectory":
		home, err := currentUserHomeDirectory()
		if err != nil {
			return "", NewBadInputError("resolving CurrentUserHomeDirectory: " + err.Error())
		}
		return home, nil

	case strings.HasPrefix(spec, "/Volumes/"):
		name := strings.TrimPrefix(spec, "/Volumes/")
		if name == "" {
			return "", NewBadInputError("empty volume name in --target")
		}
		return strings.ToUpper(name) + `:\`, nil

	case isSingleASCIILetter(spec):
		return strings.ToUpper(spec) + `:\`, nil

	default:
		return filepath.Clean(spec), nil
	}
}

func isSingleASCIILetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func currentUserHomeDirectory() (string, error) {
	if v := os.Getenv("USERPROFILE"); v != "" {
		return v, nil
	}
	return os.UserHomeDir()
}

// Volume describes one enumerated filesystem volume for --volinfo.
type Volume struct {
	Name      string
	Total     int64
	Available int64
}
