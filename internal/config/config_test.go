package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/hanoisim/internal/playback"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Disks != 3 {
		t.Errorf("expected 3 disks, got %d", cfg.Disks)
	}
	if cfg.Speed() != 800*time.Millisecond {
		t.Errorf("expected 800ms, got %v", cfg.Speed())
	}
	if cfg.Policy() != playback.SpeedNextTick {
		t.Errorf("expected next-tick policy, got %v", cfg.Policy())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		disks     int
		speed     int
		wantDisks int
		wantSpeed int
	}{
		{"in range", 4, 600, 4, 600},
		{"too few disks", 0, 600, 1, 600},
		{"too many disks", 12, 600, 7, 600},
		{"too fast", 3, 50, 3, 200},
		{"too slow", 3, 9000, 3, 1500},
	}

	for _, tt := range tests {
		cfg := &Config{Disks: tt.disks, SpeedMs: tt.speed, SpeedPolicy: "bogus"}
		cfg.Clamp()
		if cfg.Disks != tt.wantDisks {
			t.Errorf("%s: expected %d disks, got %d", tt.name, tt.wantDisks, cfg.Disks)
		}
		if cfg.SpeedMs != tt.wantSpeed {
			t.Errorf("%s: expected %dms, got %dms", tt.name, tt.wantSpeed, cfg.SpeedMs)
		}
		if cfg.SpeedPolicy != "next" {
			t.Errorf("%s: expected policy next, got %s", tt.name, cfg.SpeedPolicy)
		}
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hanoisim.yaml")

	cfg := DefaultConfig()
	cfg.Disks = 6
	cfg.SpeedMs = 300
	cfg.SpeedPolicy = "immediate"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadClampsAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("disks: 20\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Disks != 7 {
		t.Errorf("expected disks clamped to 7, got %d", cfg.Disks)
	}
	if cfg.SpeedMs != DefaultSpeedMs {
		t.Errorf("expected default speed, got %d", cfg.SpeedMs)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("tower")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Disks != 5 {
		t.Errorf("expected 5 disks, got %d", cfg.Disks)
	}

	cfg.Disks = 1
	if Presets["tower"].Disks != 5 {
		t.Error("GetPreset returned a shared pointer")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		cfg := GetPreset(name)
		clamped := *cfg
		clamped.Clamp()
		if clamped != *cfg {
			t.Errorf("preset %s outside supported range: %+v", name, cfg)
		}
		if PresetInfo(name) == "" {
			t.Errorf("preset %s has no description", name)
		}
	}
}

func TestLoadOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("disks: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	base := GetPreset("study")
	cfg, err := LoadOver(path, base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Disks != 6 {
		t.Errorf("expected file to set 6 disks, got %d", cfg.Disks)
	}
	if !cfg.Paused || cfg.Theme != "retro" || cfg.SpeedMs != 1500 {
		t.Errorf("expected study settings kept, got paused=%v theme=%s speed=%d", cfg.Paused, cfg.Theme, cfg.SpeedMs)
	}
	if base.Disks != 4 {
		t.Errorf("base preset modified: %d disks", base.Disks)
	}
}
