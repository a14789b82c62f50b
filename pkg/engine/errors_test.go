package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestEngineError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewBadMetadataError("build-info.yaml", "parsing", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestEngineError_ExitCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{BadInput, 1},
		{ArchiveNotFound, 1},
		{NeedsElevation, 1},
		{ScriptFailed, 1},
		{CleanupFailed, 0},
	}
	for _, c := range cases {
		err := &EngineError{Kind: c.kind}
		if got := err.ExitCode(); got != c.want {
			t.Errorf("Kind %v: ExitCode() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestEngineError_MessageCarriesContext(t *testing.T) {
	err := NewMalformedEntryError(`C:\scratch\x`, "../evil.txt")
	msg := err.Error()
	if !strings.Contains(msg, "../evil.txt") {
		t.Errorf("expected message to mention the offending entry, got %q", msg)
	}
	if !strings.Contains(msg, `C:\scratch\x`) {
		t.Errorf("expected message to mention the scratch path, got %q", msg)
	}
}
