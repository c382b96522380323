// Package store persists game saves as numbered JSON slot files under
// a data directory.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir returns the directory slots are written to.
func (s *Store) Dir() string { return s.baseDir }

// SlotInfo describes one save slot on disk.
type SlotInfo struct {
	Slot    int
	Path    string
	SavedAt time.Time
	Size    int64
}

var slotPattern = regexp.MustCompile(`^save_slot_(\d+)\.json$`)

func (s *Store) slotPath(slot int) string {
	return filepath.Join(s.baseDir, fmt.Sprintf("save_slot_%d.json", slot))
}

// Save marshals v into the slot file, creating the data dir as needed.
func (s *Store) Save(slot int, v any) error {
	if slot < 1 {
		return fmt.Errorf("invalid slot %d", slot)
	}
	if err := s.Init(); err != nil {
		return err
	}
	f, err := os.Create(s.slotPath(slot))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode slot %d: %w", slot, err)
	}
	return nil
}

// Load unmarshals the slot file into v.
func (s *Store) Load(slot int, v any) error {
	if slot < 1 {
		return fmt.Errorf("invalid slot %d", slot)
	}
	f, err := os.Open(s.slotPath(slot))
	if err != nil {
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode slot %d: %w", slot, err)
	}
	return nil
}

// Raw returns the slot file bytes unparsed.
func (s *Store) Raw(slot int) ([]byte, error) {
	if slot < 1 {
		return nil, fmt.Errorf("invalid slot %d", slot)
	}
	return os.ReadFile(s.slotPath(slot))
}

// Delete removes a slot file.
func (s *Store) Delete(slot int) error {
	if slot < 1 {
		return fmt.Errorf("invalid slot %d", slot)
	}
	return os.Remove(s.slotPath(slot))
}

// List returns existing slots ordered by slot number.
func (s *Store) List() ([]SlotInfo, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SlotInfo{}, nil
		}
		return nil, err
	}

	slots := make([]SlotInfo, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := slotPattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		slots = append(slots, SlotInfo{
			Slot:    n,
			Path:    filepath.Join(s.baseDir, entry.Name()),
			SavedAt: info.ModTime(),
			Size:    info.Size(),
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })
	return slots, nil
}
