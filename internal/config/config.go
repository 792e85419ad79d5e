// Package config loads the cronista CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings.
type Config struct {
	Strict int         `yaml:"strict"` // default strictness for recorded steps (1..3)
	Diff   string      `yaml:"diff"`   // default diff mode: none, summary or full
	Audit  AuditConfig `yaml:"audit"`
	Log    LogConfig   `yaml:"log"`
}

// AuditConfig controls the trail export.
type AuditConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls CLI diagnostics.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Strict: 1,
		Diff:   "none",
		Audit: AuditConfig{
			Path: filepath.Join(home, ".local", "share", "cronista", "trail.jsonl"),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the config from the standard location
// (~/.config/cronista/config.yaml). If the file doesn't exist, returns
// the default config.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil
	}

	path := filepath.Join(home, ".config", "cronista", "config.yaml")
	return LoadFrom(path)
}

// LoadFrom reads the config from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.Strict < 1 || cfg.Strict > 3 {
		return nil, fmt.Errorf("config %s: strict must be 1, 2 or 3 (got %d)", path, cfg.Strict)
	}

	// Expand ~ in the audit path.
	if cfg.Audit.Path != "" && cfg.Audit.Path[0] == '~' {
		home, _ := os.UserHomeDir()
		cfg.Audit.Path = filepath.Join(home, cfg.Audit.Path[1:])
	}

	return cfg, nil
}
