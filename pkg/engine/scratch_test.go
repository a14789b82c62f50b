package engine

import "testing"

func TestNewScratchRoot_IsolatedBetweenInvocations(t *testing.T) {
	a, err := NewScratchRoot()
	if err != nil {
		t.Fatalf("NewScratchRoot: %v", err)
	}
	defer a.Remove()

	b, err := NewScratchRoot()
	if err != nil {
		t.Fatalf("NewScratchRoot: %v", err)
	}
	defer b.Remove()

	if a.Root() == b.Root() {
		t.Fatalf("expected two invocations to get distinct scratch roots, both got %q", a.Root())
	}
	if !a.Exists() || !b.Exists() {
		t.Error("expected both scratch roots to exist on disk after creation")
	}
}

func TestScratchPaths_RemoveDeletesTree(t *testing.T) {
	s, err := NewScratchRoot()
	if err != nil {
		t.Fatalf("NewScratchRoot: %v", err)
	}
	if !s.Exists() {
		t.Fatal("expected scratch root to exist immediately after creation")
	}
	if err := s.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Exists() {
		t.Error("expected scratch root to be gone after Remove")
	}
}
