package engine

import "fmt"

// Kind identifies which of the eight error categories an EngineError
// belongs to. The category drives both the emoji used in the rendered
// message and the exit-code/propagation behavior at the CLI boundary.
type Kind int

const (
	BadInput Kind = iota
	ArchiveNotFound
	CorruptArchive
	MalformedEntry
	BadMetadata
	NeedsElevation
	ScriptFailed
	CleanupFailed
)

func (k Kind) String() string {
	switch k {
	case BadInput:
		return "BadInput"
	case ArchiveNotFound:
		return "ArchiveNotFound"
	case CorruptArchive:
		return "CorruptArchive"
	case MalformedEntry:
		return "MalformedEntry"
	case BadMetadata:
		return "BadMetadata"
	case NeedsElevation:
		return "NeedsElevation"
	case ScriptFailed:
		return "ScriptFailed"
	case CleanupFailed:
		return "CleanupFailed"
	default:
		return "Unknown"
	}
}

func (k Kind) emoji() string {
	switch k {
	case BadInput, ArchiveNotFound, CorruptArchive, MalformedEntry, BadMetadata:
		return "📦"
	case NeedsElevation:
		return "🔒"
	case ScriptFailed:
		return "🚀"
	case CleanupFailed:
		return "🧹"
	default:
		return "❌"
	}
}

// EngineError is the single error type used across the engine. It carries
// the structured context the error-handling design requires — the
// offending path, a free-text reason, and the underlying cause — rather
// than relying on a bare sentinel per kind.
type EngineError struct {
	Kind   Kind
	Path   string
	Reason string
	Cause  error
}

func (e *EngineError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Kind.emoji(), e.Kind)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *EngineError) Unwrap() error {
	return e.Cause
}

// ExitCode reports the process exit code CleanupFailed never produces
// (cleanup failures are logged, never surfaced to exit status); every
// other kind maps to a flat nonzero code except ScriptFailed, whose caller
// may prefer the child's own exit code when one is available.
func (e *EngineError) ExitCode() int {
	if e.Kind == CleanupFailed {
		return 0
	}
	return 1
}

func newErr(kind Kind, path, reason string, cause error) *EngineError {
	return &EngineError{Kind: kind, Path: path, Reason: reason, Cause: cause}
}

func NewBadInputError(reason string) *EngineError {
	return newErr(BadInput, "", reason, nil)
}

func NewArchiveNotFoundError(path string) *EngineError {
	return newErr(ArchiveNotFound, path, "archive does not exist", nil)
}

func NewCorruptArchiveError(path string, size int64, cause error) *EngineError {
	return newErr(CorruptArchive, path, fmt.Sprintf("size=%d bytes", size), cause)
}

func NewMalformedEntryError(path, entry string) *EngineError {
	return newErr(MalformedEntry, path, fmt.Sprintf("entry %q escapes scratch root", entry), nil)
}

func NewBadMetadataError(path, reason string, cause error) *EngineError {
	return newErr(BadMetadata, path, reason, cause)
}

func NewNeedsElevationError(path, reason string) *EngineError {
	return newErr(NeedsElevation, path, reason, nil)
}

func NewScriptFailedError(kind string, path string, tail string, cause error) *EngineError {
	return newErr(ScriptFailed, path, fmt.Sprintf("%s script failed\n%s", kind, tail), cause)
}

func NewCleanupFailedError(path string, cause error) *EngineError {
	return newErr(CleanupFailed, path, "scratch directory removal failed", cause)
}
