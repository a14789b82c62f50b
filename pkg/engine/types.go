package engine

// ArchiveKind tags an incoming archive as one of the two supported
// packaging layouts.
type ArchiveKind int

const (
	KindNative ArchiveKind = iota
	KindForeign
)

func (k ArchiveKind) String() string {
	if k == KindNative {
		return "native"
	}
	return "foreign"
}

// NativeMetadata is the build spec format this tool's own packages carry.
type NativeMetadata struct {
	Name          string   `yaml:"name"`
	Version       string   `yaml:"version"`
	Description   string   `yaml:"description"`
	Author        string   `yaml:"author"`
	License       string   `yaml:"license"`
	Homepage      string   `yaml:"homepage"`
	Target        string   `yaml:"target"`
	InstallLoc    string   `yaml:"install_location"`
	RestartAction string   `yaml:"restart_action"`
	Dependencies  []string `yaml:"dependencies"`
}

// ForeignMetadata is the package spec format accepted from the foreign
// packaging ecosystem, after namespace stripping has made every historical
// schema version bind to the same structural shape.
type ForeignMetadata struct {
	ID          string `xml:"metadata>id"`
	Version     string `xml:"metadata>version"`
	Title       string `xml:"metadata>title"`
	Authors     string `xml:"metadata>authors"`
	Description string `xml:"metadata>description"`
	Owners      string `xml:"metadata>owners"`
	ProjectURL  string `xml:"metadata>projectUrl"`
	IconURL     string `xml:"metadata>iconUrl"`
	Tags        string `xml:"metadata>tags"`
	Summary     string `xml:"metadata>summary"`
	ReleaseNote string `xml:"metadata>releaseNotes"`
	Copyright   string `xml:"metadata>copyright"`
}

// PackageInfo is populated after extraction and carries everything the
// remaining components need; it owns its scratch directory for the
// lifetime of one invocation.
type PackageInfo struct {
	Kind        ArchiveKind
	ArchivePath string
	ScratchDir  string

	NativeMeta  *NativeMetadata
	ForeignMeta *ForeignMetadata

	HasPreNative   bool
	HasPostNative  bool
	HasPreForeign  bool
	HasPostForeign bool

	PayloadFiles []string
}

// InstallMode is derived from PackageInfo, never stored on it directly.
type InstallMode int

const (
	ModeScriptOnly InstallMode = iota
	ModeCopyType
	ModeInstallerType
)

func (m InstallMode) String() string {
	switch m {
	case ModeScriptOnly:
		return "script-only"
	case ModeCopyType:
		return "copy-type"
	case ModeInstallerType:
		return "installer-type"
	default:
		return "unknown"
	}
}

// Classification is the Classifier's output: the derived mode plus the
// effective install location it implies.
type Classification struct {
	Mode                   InstallMode
	EffectiveInstallLocation string
}
