package engine

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
)

func discardLogger() hclog.Logger {
	return hclog.NewNullLogger()
}

func writeTestZip(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wpkg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("writing entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}
	return path
}

func TestClassifyArchiveKind(t *testing.T) {
	cases := []struct {
		path string
		kind ArchiveKind
		ok   bool
	}{
		{"demo.wpkg", KindNative, true},
		{"Demo.WPKG", KindNative, true},
		{"demo.nupkg", KindForeign, true},
		{"demo.zip", 0, false},
		{"demo", 0, false},
	}

	for _, c := range cases {
		kind, err := ClassifyArchiveKind(c.path)
		if c.ok && err != nil {
			t.Errorf("ClassifyArchiveKind(%q): unexpected error %v", c.path, err)
		}
		if !c.ok && err == nil {
			t.Errorf("ClassifyArchiveKind(%q): expected error, got none", c.path)
		}
		if c.ok && kind != c.kind {
			t.Errorf("ClassifyArchiveKind(%q) = %v, want %v", c.path, kind, c.kind)
		}
	}
}

func TestExtractEntries_EntryConfinement(t *testing.T) {
	path := writeTestZip(t, map[string]string{
		"hello.txt":   "hi",
		"../evil.txt": "escape attempt",
	})

	r, err := OpenArchive(path, discardLogger())
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer r.Close()

	scratch, err := NewScratchRoot()
	if err != nil {
		t.Fatalf("NewScratchRoot: %v", err)
	}
	defer scratch.Remove()

	err = ExtractEntries(r, scratch, discardLogger())
	if err == nil {
		t.Fatal("expected MalformedEntry error for escaping entry, got nil")
	}
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != MalformedEntry {
		t.Fatalf("expected MalformedEntry, got %v", err)
	}
}

func TestExtractEntries_NormalArchive(t *testing.T) {
	path := writeTestZip(t, map[string]string{
		"build-info.yaml":      "name: demo\nversion: \"1.0\"\n",
		"payload/hello.txt":    "hello world",
		"scripts/postinstall.ps1": "Write-Host 'ok'",
	})

	r, err := OpenArchive(path, discardLogger())
	if err != nil {
		t.Fatalf("OpenArchive: %v", err)
	}
	defer r.Close()

	scratch, err := NewScratchRoot()
	if err != nil {
		t.Fatalf("NewScratchRoot: %v", err)
	}
	defer scratch.Remove()

	if err := ExtractEntries(r, scratch, discardLogger()); err != nil {
		t.Fatalf("ExtractEntries: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(scratch.Payload(), "hello.txt"))
	if err != nil {
		t.Fatalf("reading extracted payload: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("extracted content = %q, want %q", data, "hello world")
	}
}

func TestOpenArchive_NotFound(t *testing.T) {
	_, err := OpenArchive(filepath.Join(t.TempDir(), "missing.wpkg"), discardLogger())
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != ArchiveNotFound {
		t.Fatalf("expected ArchiveNotFound, got %v", err)
	}
}

func TestOpenArchive_Corrupt(t *testing.T) {
	path := writeTestZip(t, map[string]string{"hello.txt": "hi"})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	// Truncate to simulate a chopped archive (scenario S5).
	if err := os.Truncate(path, info.Size()-100); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	_, err = OpenArchive(path, discardLogger())
	eerr, ok := err.(*EngineError)
	if !ok || eerr.Kind != CorruptArchive {
		t.Fatalf("expected CorruptArchive, got %v", err)
	}
}
