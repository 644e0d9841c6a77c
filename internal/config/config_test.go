package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("Expected default 800x600 canvas, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Background.BlurSigma != 10 {
		t.Errorf("Expected default blur sigma 10, got %g", cfg.Background.BlurSigma)
	}
	if cfg.Background.Brightness != 0.5 {
		t.Errorf("Expected default brightness 0.5, got %g", cfg.Background.Brightness)
	}
	if cfg.Background.Upscale != 1.1 {
		t.Errorf("Expected default upscale 1.1, got %g", cfg.Background.Upscale)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero canvas width", func(c *Config) { c.Canvas.Width = 0 }},
		{"zero canvas height", func(c *Config) { c.Canvas.Height = 0 }},
		{"negative blur", func(c *Config) { c.Background.BlurSigma = -1 }},
		{"negative brightness", func(c *Config) { c.Background.Brightness = -0.5 }},
		{"upscale below 1", func(c *Config) { c.Background.Upscale = 0.9 }},
	}

	for _, test := range tests {
		cfg := Default()
		test.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", test.name)
		}
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Canvas.Width = 1160
	cfg.Canvas.Height = 655
	cfg.Background.Brightness = 0.7

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("Round trip mismatch: %+v != %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
