// Package config handles editor configuration loading.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Brush   BrushConfig   `yaml:"brush"`
	Reload  ReloadConfig  `yaml:"reload"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RGB is a color with 0-255 channels as written in config files.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// BrushConfig holds selection brush settings.
type BrushConfig struct {
	RadiusPx  float64 `yaml:"radius_px"`
	Base      RGB     `yaml:"base_color"`
	Highlight RGB     `yaml:"highlight_color"`
}

// ReloadConfig holds file watching settings.
type ReloadConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1400,
			Height: 900,
		},
		Brush: BrushConfig{
			RadiusPx:  10,
			Base:      RGB{R: 200, G: 200, B: 200},
			Highlight: RGB{R: 100, G: 150, B: 255},
		},
		Reload: ReloadConfig{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file is
// not an error: the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Brush.RadiusPx <= 0 {
		cfg.Brush.RadiusPx = Default().Brush.RadiusPx
	}
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window = Default().Window
	}

	return cfg, nil
}
