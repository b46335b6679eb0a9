// Package config loads fairshare.yaml plus environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Backend names a snapshot store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Config represents the top-level fairshare.yaml configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig selects and locates the snapshot backend.
type StoreConfig struct {
	Backend    Backend `yaml:"backend"`     // "file" or "sqlite"
	Path       string  `yaml:"path"`        // JSON snapshot path (file backend)
	SQLitePath string  `yaml:"sqlite_path"` // database path (sqlite backend)
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a fairshare.yaml file from disk and applies environment
// overrides on top.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
// Environment overrides still apply.
func Default() *Config {
	cfg := &Config{
		Store: StoreConfig{
			Backend:    BackendFile,
			Path:       "fairshare.json",
			SQLitePath: "fairshare.db",
		},
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
	}
	cfg.applyEnv()
	return cfg
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("FAIRSHARE_STORE"); ok {
		c.Store.Backend = Backend(v)
	}
	if v, ok := os.LookupEnv("FAIRSHARE_DATA"); ok {
		c.Store.Path = v
	}
	if v, ok := os.LookupEnv("FAIRSHARE_SQLITE"); ok {
		c.Store.SQLitePath = v
	}
	if v, ok := os.LookupEnv("FAIRSHARE_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("FAIRSHARE_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
}
