package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Window.Width != 1000 || cfg.Window.Height != 800 {
		t.Errorf("default window = %dx%d, want 1000x800", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TargetFPS != 60 {
		t.Errorf("default target_fps = %d, want 60", cfg.Window.TargetFPS)
	}
	if !cfg.Audio.Enabled {
		t.Error("audio should be enabled by default")
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	user := []byte("window:\n  title: \"duck hunt\"\n  width: 640\n")
	if err := os.WriteFile(path, user, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Title != "duck hunt" {
		t.Errorf("title = %q, want overridden value", cfg.Window.Title)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Window.Width)
	}
	// Fields absent from the user file keep their defaults.
	if cfg.Window.Height != 800 {
		t.Errorf("height = %d, want default 800", cfg.Window.Height)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing file should fail")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Window.Title = "saved"

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config failed: %v", err)
	}
	if loaded.Window.Title != "saved" {
		t.Errorf("round-tripped title = %q, want \"saved\"", loaded.Window.Title)
	}
}
