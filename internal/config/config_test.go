package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Snap.GridEnabled || cfg.Snap.GridInterval != 0.5 {
		t.Errorf("Default grid snap = %+v, want enabled at 0.5s", cfg.Snap)
	}
	if !cfg.Snap.EdgeEnabled || cfg.Snap.EdgeThreshold != 0.2 {
		t.Errorf("Default edge snap = %+v, want enabled at 0.2s", cfg.Snap)
	}
	if cfg.Editor.Zoom != 10 {
		t.Errorf("Default zoom = %v, want 10", cfg.Editor.Zoom)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Default log level = %s, want info", cfg.Log.Level)
	}
}

func TestDomainSnap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Snap.GridInterval = 1.0
	cfg.Snap.EdgeEnabled = false

	snap := cfg.DomainSnap()
	if snap.GridInterval != 1.0 || snap.EdgeEnabled {
		t.Errorf("DomainSnap() = %+v", snap)
	}
}

func TestConfig_Save_Load(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Editor.Zoom = 25
	cfg.Snap.GridInterval = 1.0

	err := cfg.Save(configPath)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if loaded.Editor.Zoom != 25 {
		t.Errorf("Loaded zoom = %v, want 25", loaded.Editor.Zoom)
	}
	if loaded.Snap.GridInterval != 1.0 {
		t.Errorf("Loaded grid interval = %v, want 1.0", loaded.Snap.GridInterval)
	}
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.Zoom != 10 {
		t.Errorf("missing config did not fall back to defaults: %+v", cfg)
	}
}

func TestAppDir(t *testing.T) {
	dir := AppDir()
	if dir == "" {
		t.Error("AppDir() returned empty string")
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cueline")
	if dir != expected {
		t.Errorf("AppDir() = %s, want %s", dir, expected)
	}
}
