// Package config provides configuration loading and structs for the Adesua server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osei-labs/adesua/internal/ranking"
)

// Config holds all configuration for the application.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Catalogs CatalogsConfig `yaml:"catalogs"`
	Search   SearchConfig   `yaml:"search"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the path for the analytics database.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// CatalogsConfig holds catalog loading settings.
type CatalogsConfig struct {
	Directory string `yaml:"directory"`
	Watch     *bool  `yaml:"watch"`
}

// WatchOrDefault returns whether to watch the catalog directory for changes;
// defaults to true when unset.
func (c *CatalogsConfig) WatchOrDefault() bool {
	if c.Watch != nil {
		return *c.Watch
	}
	return true
}

// SearchConfig holds search, history, and ranking settings.
type SearchConfig struct {
	DefaultLimit    int            `yaml:"default_limit"`
	MaxLimit        int            `yaml:"max_limit"`
	HistorySize     int            `yaml:"history_size"`
	SessionLimit    int            `yaml:"session_limit"`
	IntentThreshold float64        `yaml:"intent_threshold"`
	Ranking         ranking.Config `yaml:"ranking"`
}

// Load reads and parses the config file at path, expands paths, and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, configDir)
	cfg.Catalogs.Directory = expandPath(cfg.Catalogs.Directory, configDir)

	return &cfg, nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
