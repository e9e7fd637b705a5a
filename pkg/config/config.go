package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Host Settings
	HostAddress        string `yaml:"host_address"`
	HostTimeoutSeconds int    `yaml:"host_timeout_seconds"`

	// Library
	LibraryPath string `yaml:"library_path"`

	// Save/Load Defaults
	DefaultFileFormat string   `yaml:"default_file_format"`
	DefaultLoadType   string   `yaml:"default_load_type"`
	DefaultGrouping   bool     `yaml:"default_grouping"`
	DefaultNamespace  bool     `yaml:"default_namespace"`
	SceneAttrs        []string `yaml:"scene_attrs"`

	// Logging
	LogFile string `yaml:"log_file"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		HostAddress:        "localhost:7001",
		HostTimeoutSeconds: 30,
		LibraryPath:        "",
		DefaultFileFormat:  "mayaBinary",
		DefaultLoadType:    "reference",
		DefaultGrouping:    true,
		DefaultNamespace:   true,
		SceneAttrs:         []string{},
		LogFile:            "",
		ColorTheme:         "auto",
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.SceneAttrs == nil {
		cfg.SceneAttrs = []string{}
	}

	// Apply defaults for essential values if missing
	if cfg.HostAddress == "" {
		cfg.HostAddress = "localhost:7001"
	}
	if cfg.HostTimeoutSeconds <= 0 {
		cfg.HostTimeoutSeconds = 30
	}
	if cfg.DefaultFileFormat == "" {
		cfg.DefaultFileFormat = "mayaBinary"
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	if !isValidLoadType(cfg.DefaultLoadType) {
		cfg.DefaultLoadType = "reference"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// HostTimeout returns the per-request commandPort timeout
func (c *Config) HostTimeout() time.Duration {
	return time.Duration(c.HostTimeoutSeconds) * time.Second
}

// isValidLoadType checks the default load type, ignoring case
func isValidLoadType(loadType string) bool {
	switch strings.ToLower(strings.TrimSpace(loadType)) {
	case "import", "reference":
		return true
	}
	return false
}
