// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the directory name used under the XDG config and cache roots.
	AppName = "orgflow"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds static client configuration (read-only after init).
type Config struct {
	API   APIConfig   `yaml:"api,omitempty"`
	Cache CacheConfig `yaml:"cache,omitempty"`
	Log   LogConfig   `yaml:"log,omitempty"`
}

// APIConfig holds the remote service endpoint and credentials.
type APIConfig struct {
	URL string `yaml:"url,omitempty"`
	Key string `yaml:"key,omitempty"`
}

// CacheConfig controls the response cache layered under the dispatcher.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{Enabled: true},
		Log:   LogConfig{Level: "info"},
	}
}

// Load loads configuration from path, or from the default config file when
// path is empty. A missing file is not an error: defaults plus environment
// overrides still form a usable config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Validate checks that the config can reach the remote service.
func (c *Config) Validate() error {
	if c.API.URL == "" {
		return errors.New("api url is required (set api.url or ORGFLOW_API_URL)")
	}
	if c.API.Key == "" {
		return errors.New("api key is required (set api.key or ORGFLOW_API_KEY)")
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("ORGFLOW_API_URL"); url != "" {
		c.API.URL = url
	}
	if key := os.Getenv("ORGFLOW_API_KEY"); key != "" {
		c.API.Key = key
	}
	if level := os.Getenv("ORGFLOW_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// DefaultPath returns the default config file path under the XDG config root.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// CacheRoot returns the directory under which response caches are created.
func CacheRoot() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Exists checks if a config file exists at path (default path when empty).
func Exists(path string) bool {
	if path == "" {
		path = DefaultPath()
	}
	_, err := os.Stat(path)
	return err == nil
}
