package registry

import (
	"strings"
	"testing"
)

func TestEntriesAreComplete(t *testing.T) {
	entries := Entries(t.TempDir())
	if len(entries) != 12 {
		t.Fatalf("got %d entries, want 12", len(entries))
	}
	seen := map[string]bool{}
	for _, e := range entries {
		if e.Name == "" || e.Title == "" || e.Desc == "" {
			t.Errorf("entry %q missing metadata", e.Name)
		}
		if len(e.Controls) == 0 {
			t.Errorf("entry %q has no control help", e.Name)
		}
		if e.New == nil {
			t.Errorf("entry %q has no constructor", e.Name)
		}
		if seen[e.Name] {
			t.Errorf("duplicate entry %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestConstructorsMatchNames(t *testing.T) {
	for _, e := range Entries(t.TempDir()) {
		s := e.New()
		if s.Name() != e.Name {
			t.Errorf("entry %q constructs scene named %q", e.Name, s.Name())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup(t.TempDir(), "teapot")
	if err == nil {
		t.Fatal("expected error for unknown scene")
	}
	if !strings.Contains(err.Error(), "plasma") {
		t.Errorf("error should list available scenes, got: %v", err)
	}
}
