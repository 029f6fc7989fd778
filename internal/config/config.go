// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store backend names accepted in configuration.
const (
	StoreFile     = "file"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	Store       string `json:"store,omitempty"`        // Backend: file, memory, redis or postgres
	DataFile    string `json:"data_file,omitempty"`    // Path of the file-backend JSON document
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisAddr   string `json:"redis_addr,omitempty"`   // Redis host:port
	RedisDB     int    `json:"redis_db,omitempty"`     // Redis database number
	RedisPrefix string `json:"redis_prefix,omitempty"` // Key prefix for the redis backend

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Store {
	case "", StoreFile, StoreMemory, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("config error: unknown store backend %q", c.Store)
	}

	if c.Store == StorePostgres && c.DatabaseURL == "" {
		return fmt.Errorf("config error: 'database_url' is required for the postgres store")
	}
	if c.Store == StoreRedis && c.RedisAddr == "" {
		return fmt.Errorf("config error: 'redis_addr' is required for the redis store")
	}
	if c.RedisDB < 0 {
		return fmt.Errorf("config error: 'redis_db' must be non-negative")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.DataFile == "" {
		result.DataFile = defaults.DataFile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisAddr == "" {
		result.RedisAddr = defaults.RedisAddr
	}
	if result.RedisPrefix == "" {
		result.RedisPrefix = defaults.RedisPrefix
	}

	// Int fields: use default if zero
	if result.RedisDB == 0 {
		result.RedisDB = defaults.RedisDB
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultDataFile resolves the default location of the file-backend document.
func DefaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "placement-advisor.json"
	}
	return filepath.Join(home, ".placement-advisor", "store.json")
}
