package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Brush.RadiusPx != 10 {
		t.Errorf("expected default brush radius 10, got %v", cfg.Brush.RadiusPx)
	}
	if cfg.Window.Width != 1400 || cfg.Window.Height != 900 {
		t.Errorf("unexpected default window: %+v", cfg.Window)
	}
	if !cfg.Reload.Enabled {
		t.Error("expected reload enabled by default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Brush.RadiusPx != Default().Brush.RadiusPx {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	content := `
window:
  width: 800
  height: 600
brush:
  radius_px: 25
  highlight_color:
    r: 255
    g: 0
    b: 0
reload:
  debounce: 250ms
logging:
  level: debug
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("unexpected window: %+v", cfg.Window)
	}
	if cfg.Brush.RadiusPx != 25 {
		t.Errorf("expected radius 25, got %v", cfg.Brush.RadiusPx)
	}
	if cfg.Brush.Highlight != (RGB{R: 255}) {
		t.Errorf("unexpected highlight: %+v", cfg.Brush.Highlight)
	}
	if cfg.Reload.Debounce != 250*time.Millisecond {
		t.Errorf("expected debounce 250ms, got %v", cfg.Reload.Debounce)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level debug, got %q", cfg.Logging.Level)
	}
	// untouched sections keep their defaults
	if cfg.Brush.Base != Default().Brush.Base {
		t.Errorf("expected default base color, got %+v", cfg.Brush.Base)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	content := "brush:\n  radius_px: -5\nwindow:\n  width: 0\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Brush.RadiusPx != Default().Brush.RadiusPx {
		t.Errorf("expected radius reset to default, got %v", cfg.Brush.RadiusPx)
	}
	if cfg.Window != Default().Window {
		t.Errorf("expected window reset to default, got %+v", cfg.Window)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window: [not a map"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed yaml")
	}
}
