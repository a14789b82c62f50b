package engine

// Archive extensions. One maps to each ArchiveKind; anything else is a
// BadInput error at the CLI boundary.
const (
	NativeExt  = ".wpkg"
	ForeignExt = ".nupkg"
)

// Well-known relative paths inside an extracted scratch directory.
const (
	NativeMetadataFile = "build-info.yaml"
	NativePayloadDir   = "payload"
	NativePreScript    = "scripts/preinstall.ps1"
	NativePostScript   = "scripts/postinstall.ps1"
	ForeignPreScript   = "tools/chocolateyBeforeInstall.ps1"
	ForeignPostScript  = "tools/chocolateyInstall.ps1"
	ForeignNuspecGlob  = "*.nuspec"
)

// Metadata subtrees and extensions excluded from foreign copy-type
// mirroring.
var ForeignExcludedDirs = []string{"_rels", "package", "tools"}

// installer-executable filename patterns used by the foreign-package
// install-mode heuristic.
var installerSubstrings = []string{"setup", "installer", "install"}

// font file extensions used by the foreign-package default-location
// heuristic.
var fontExtensions = map[string]bool{
	".ttf": true, ".otf": true, ".ttc": true, ".fon": true,
}

// BoundedOutputTailLines is how many of the most recent captured script
// output lines a ScriptFailed error carries for diagnosis.
const BoundedOutputTailLines = 200
