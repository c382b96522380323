package store

import (
	"os"
	"path/filepath"
	"testing"
)

type payload struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	in := payload{Name: "Hero", Level: 3}
	if err := s.Save(2, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	var out payload
	if err := s.Load(2, &out); err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestLoadMissingSlotIsError(t *testing.T) {
	s := New(t.TempDir())
	var out payload
	if err := s.Load(1, &out); err == nil {
		t.Fatal("expected error for missing slot")
	}
}

func TestInvalidSlotRejected(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Save(0, payload{}); err == nil {
		t.Error("slot 0 should be rejected")
	}
	if err := s.Save(-3, payload{}); err == nil {
		t.Error("negative slot should be rejected")
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Save(1, payload{Name: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(5, payload{Name: "b"}); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "notes.txt"))
	writeFile(t, filepath.Join(dir, "save_slot_x.json"))

	slots, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(slots))
	}
	if slots[0].Slot != 1 || slots[1].Slot != 5 {
		t.Errorf("slots out of order: %+v", slots)
	}
}

func TestListEmptyDirIsNotError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	slots, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots, got %d", len(slots))
	}
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}
