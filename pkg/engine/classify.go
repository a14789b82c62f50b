package engine

import (
	"path/filepath"
	"strings"
)

// Classify is a pure function over PackageInfo that derives the install
// mode and effective install location per the data model's rules.
// targetRoot is the already-resolved root from the Target Resolver; it
// is consulted for native copy-type packages with a relative install
// location and for the derived default location of foreign copy-type
// packages.
func Classify(info *PackageInfo, targetRoot string) Classification {
	if len(info.PayloadFiles) == 0 {
		return Classification{Mode: ModeScriptOnly}
	}

	if info.Kind == KindNative {
		loc := ""
		if info.NativeMeta != nil {
			loc = info.NativeMeta.InstallLoc
		}
		if loc == "" {
			return Classification{Mode: ModeInstallerType}
		}
		return Classification{
			Mode:                     ModeCopyType,
			EffectiveInstallLocation: joinInstallLocation(targetRoot, loc),
		}
	}

	// Foreign package with payload: installer-executable heuristic first.
	if hasInstallerExecutable(info.PayloadFiles) {
		return Classification{Mode: ModeInstallerType}
	}

	loc := defaultForeignLocation(info, targetRoot)
	return Classification{Mode: ModeCopyType, EffectiveInstallLocation: loc}
}

// joinInstallLocation resolves install_location against targetRoot. An
// absolute install_location wins outright, matching macOS installer
// semantics where the target root is effectively ignored in that case.
func joinInstallLocation(targetRoot, loc string) string {
	if filepath.IsAbs(loc) || isWindowsAbs(loc) {
		return filepath.Clean(loc)
	}
	return filepath.Join(targetRoot, loc)
}

func isWindowsAbs(p string) bool {
	if len(p) >= 2 && p[1] == ':' {
		return true
	}
	return strings.HasPrefix(p, `\`) || strings.HasPrefix(p, "/")
}

func hasInstallerExecutable(files []string) bool {
	for _, f := range files {
		base := strings.ToLower(filepath.Base(f))
		if strings.HasSuffix(base, ".msi") {
			return true
		}
		for _, sub := range installerSubstrings {
			if strings.Contains(base, sub) {
				return true
			}
		}
	}
	return false
}

// defaultForeignLocation derives the default copy-type destination for a
// foreign package with no installer-executable payload: the Fonts
// directory when the payload is predominantly font files, otherwise a
// product-named directory under the system program-files root.
func defaultForeignLocation(info *PackageInfo, targetRoot string) string {
	if isPredominantlyFonts(info.PayloadFiles) {
		return filepath.Join(targetRoot, "Windows", "Fonts")
	}

	product := "Package"
	if info.ForeignMeta != nil && info.ForeignMeta.ID != "" {
		product = info.ForeignMeta.ID
	}
	return filepath.Join(targetRoot, "Program Files", product)
}

func isPredominantlyFonts(files []string) bool {
	if len(files) == 0 {
		return false
	}
	fontCount := 0
	for _, f := range files {
		if fontExtensions[strings.ToLower(filepath.Ext(f))] {
			fontCount++
		}
	}
	return fontCount*2 > len(files)
}
