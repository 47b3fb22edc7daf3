package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devbush/cueline/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Snap   SnapConfig   `yaml:"snap"`
	Editor EditorConfig `yaml:"editor"`
	Log    LogConfig    `yaml:"log"`
}

// SnapConfig holds the timeline snapping settings
type SnapConfig struct {
	GridEnabled   bool    `yaml:"grid_enabled"`
	GridInterval  float64 `yaml:"grid_interval"`
	EdgeEnabled   bool    `yaml:"edge_enabled"`
	EdgeThreshold float64 `yaml:"edge_threshold"`
}

// EditorConfig holds editor defaults
type EditorConfig struct {
	Zoom float64 `yaml:"zoom"` // timeline cells per second
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Snap: SnapConfig{
			GridEnabled:   true,
			GridInterval:  0.5,
			EdgeEnabled:   true,
			EdgeThreshold: 0.2,
		},
		Editor: EditorConfig{
			Zoom: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DomainSnap converts the snap settings to the domain policy type
func (c *Config) DomainSnap() domain.SnapConfig {
	return domain.SnapConfig{
		GridEnabled:   c.Snap.GridEnabled,
		GridInterval:  c.Snap.GridInterval,
		EdgeEnabled:   c.Snap.EdgeEnabled,
		EdgeThreshold: c.Snap.EdgeThreshold,
	}
}

// AppDir returns the application directory (~/.cueline)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cueline"
	}
	return filepath.Join(home, ".cueline")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// LogPath returns the session log file path
func LogPath() string {
	return filepath.Join(AppDir(), "cueline.log")
}

// EnsureDirs creates all required directories
func EnsureDirs() error {
	if err := os.MkdirAll(AppDir(), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", AppDir(), err)
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
