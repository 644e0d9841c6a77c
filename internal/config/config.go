package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Canvas     CanvasConfig     `json:"canvas"`
	Background BackgroundConfig `json:"background"`
	Output     OutputConfig     `json:"output"`
}

// CanvasConfig holds the fixed output dimensions
type CanvasConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BackgroundConfig holds parameters for the background fill layer
type BackgroundConfig struct {
	BlurSigma  float64 `json:"blur_sigma"`
	Brightness float64 `json:"brightness"`
	Upscale    float64 `json:"upscale"`
}

// OutputConfig holds configuration for output generation
type OutputConfig struct {
	Dir    string `json:"dir"`
	Prefix string `json:"prefix"`
	Suffix string `json:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Background: BackgroundConfig{
			BlurSigma:  10,
			Brightness: 0.5,
			Upscale:    1.1,
		},
		Output: OutputConfig{
			Dir:    "",
			Prefix: "",
			Suffix: "_fitted",
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas dimensions must be positive")
	}

	if c.Background.BlurSigma < 0 {
		return fmt.Errorf("background.blur_sigma must not be negative")
	}

	if c.Background.Brightness < 0 {
		return fmt.Errorf("background.brightness must not be negative")
	}

	if c.Background.Upscale < 1 {
		return fmt.Errorf("background.upscale must be at least 1")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "photofit", "config.json")
}
