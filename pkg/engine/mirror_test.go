package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMirrorPayload_CopiesTreeWithOverwrite(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dst")

	if err := os.MkdirAll(filepath.Join(src, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "top.txt"), []byte("top"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "nested.txt"), []byte("nested"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	// Pre-existing file at destination should be overwritten, not appended.
	if err := os.MkdirAll(dst, 0o755); err != nil {
		t.Fatalf("mkdir dst: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dst, "top.txt"), []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale: %v", err)
	}

	if err := MirrorPayload(src, dst, discardLogger()); err != nil {
		t.Fatalf("MirrorPayload: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dst, "top.txt"))
	if err != nil {
		t.Fatalf("reading mirrored top.txt: %v", err)
	}
	if string(got) != "top" {
		t.Errorf("top.txt = %q, want overwrite to %q", got, "top")
	}

	got, err = os.ReadFile(filepath.Join(dst, "sub", "nested.txt"))
	if err != nil {
		t.Fatalf("reading mirrored nested.txt: %v", err)
	}
	if string(got) != "nested" {
		t.Errorf("nested.txt = %q, want %q", got, "nested")
	}
}

func TestMirrorForeignPayload_ExcludesMetadataSubtrees(t *testing.T) {
	scratch := t.TempDir()
	dst := filepath.Join(t.TempDir(), "dst")

	paths := map[string]string{
		"tools/chocolateyInstall.ps1": "ignored by mirror, run separately",
		"_rels/.rels":                 "should be excluded",
		"package/services/metadata/core-properties/x.psmdcp": "should be excluded",
		"lib/net45/demo.dll":          "payload",
		"demo.nuspec":                 "should be excluded",
	}
	for rel, content := range paths {
		full := filepath.Join(scratch, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	if err := MirrorForeignPayload(scratch, dst, discardLogger()); err != nil {
		t.Fatalf("MirrorForeignPayload: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dst, "lib", "net45", "demo.dll")); err != nil {
		t.Errorf("expected lib/net45/demo.dll to be mirrored: %v", err)
	}
	for _, excluded := range []string{"_rels/.rels", "package/services/metadata/core-properties/x.psmdcp", "demo.nuspec", "tools/chocolateyInstall.ps1"} {
		if _, err := os.Stat(filepath.Join(dst, excluded)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be excluded from mirror, stat err = %v", excluded, err)
		}
	}
}
