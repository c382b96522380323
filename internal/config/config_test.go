package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scene != "plasma" {
		t.Errorf("expected scene plasma, got %s", cfg.Scene)
	}
	if cfg.WindowScale <= 0 {
		t.Error("window scale should be positive")
	}
	if cfg.Params == nil {
		t.Error("params map should be initialized")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("plasma", "calm")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params["speed"] != 0.5 {
		t.Errorf("expected speed 0.5, got %f", cfg.Params["speed"])
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("plasma", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "calm")
	if cfg != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("plasma")
	if len(presets) == 0 {
		t.Error("expected presets for plasma")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent scene")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artcade.yaml")
	cfg := DefaultConfig()
	cfg.Scene = "galaxy"
	cfg.Seed = 99
	cfg.Params["rotation"] = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Scene != "galaxy" || loaded.Seed != 99 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Params["rotation"] != 2.5 {
		t.Errorf("params not preserved: %+v", loaded.Params)
	}
}

func TestLoadEmptyParamsKeyYieldsUsableMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artcade.yaml")
	if err := os.WriteFile(path, []byte("scene: plasma\nparams:\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params == nil {
		t.Fatal("params map is nil after loading an empty params key")
	}
	cfg.Params["speed"] = 2.0 // must not panic
	if cfg.Params["speed"] != 2.0 {
		t.Errorf("expected speed 2.0, got %f", cfg.Params["speed"])
	}
}
