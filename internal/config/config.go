// Package config provides configuration for gitignore-gen.
//
// Configuration is resolved in priority order:
//  1. Environment variables (GITIGNORE_GEN_*) - highest priority
//  2. User config (~/.config/gitignore-gen/config.yaml)
//  3. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Default endpoints for the GitHub template repository.
const (
	DefaultAPIBase = "https://api.github.com/repos/github/gitignore/contents"
	DefaultRawBase = "https://raw.githubusercontent.com/github/gitignore/main"
)

// Config represents the complete gitignore-gen configuration.
type Config struct {
	// APIBase is the root of the hierarchical template listing API.
	APIBase string `yaml:"api_base" json:"api_base"`

	// RawBase is the base URL for raw template downloads. Used as a
	// fallback when a catalog entry carries no direct download location.
	RawBase string `yaml:"raw_base" json:"raw_base"`

	// CacheDir is the root directory for the persisted catalog and the
	// per-template content cache. Empty means the platform default.
	CacheDir string `yaml:"cache_dir" json:"cache_dir"`

	// CacheValidityDays is the catalog staleness window in days.
	CacheValidityDays int `yaml:"cache_validity_days" json:"cache_validity_days"`

	// HTTPTimeout bounds each network call (e.g., "5s").
	HTTPTimeout string `yaml:"http_timeout" json:"http_timeout"`

	// Output is the default output document path.
	Output string `yaml:"output" json:"output"`

	// LogLevel is the minimum log level when --debug is enabled.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// NewConfig creates a Config with defaults mirroring the public
// github/gitignore repository layout.
func NewConfig() *Config {
	return &Config{
		APIBase:           DefaultAPIBase,
		RawBase:           DefaultRawBase,
		CacheDir:          DefaultCacheDir(),
		CacheValidityDays: 7,
		HTTPTimeout:       "5s",
		Output:            ".gitignore",
		LogLevel:          "info",
	}
}

// DefaultCacheDir returns the platform cache root:
// %APPDATA%\gitignore-gen\cache on Windows, ~/.cache/gitignore-gen elsewhere.
func DefaultCacheDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "gitignore-gen", "cache")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "gitignore-gen")
	}
	return filepath.Join(home, ".cache", "gitignore-gen")
}

// GetUserConfigPath returns the path to the user configuration file.
// It follows the XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/gitignore-gen/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/gitignore-gen/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gitignore-gen", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "gitignore-gen", "config.yaml")
	}
	return filepath.Join(home, ".config", "gitignore-gen", "config.yaml")
}

// Load resolves the effective configuration: defaults, overlaid with the
// user config file when present, overlaid with environment variables.
// A missing user config file is not an error.
func Load() (*Config, error) {
	cfg := NewConfig()

	path := GetUserConfigPath()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads configuration from an explicit path, with env overrides.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays GITIGNORE_GEN_* environment variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("GITIGNORE_GEN_API_BASE"); v != "" {
		c.APIBase = v
	}
	if v := os.Getenv("GITIGNORE_GEN_RAW_BASE"); v != "" {
		c.RawBase = v
	}
	if v := os.Getenv("GITIGNORE_GEN_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("GITIGNORE_GEN_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("GITIGNORE_GEN_HTTP_TIMEOUT"); v != "" {
		c.HTTPTimeout = v
	}
	if v := os.Getenv("GITIGNORE_GEN_CACHE_VALIDITY_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			c.CacheValidityDays = days
		}
	}
	if v := os.Getenv("GITIGNORE_GEN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base must not be empty")
	}
	if c.RawBase == "" {
		return fmt.Errorf("raw_base must not be empty")
	}
	if c.CacheValidityDays <= 0 {
		return fmt.Errorf("cache_validity_days must be positive, got %d", c.CacheValidityDays)
	}
	if _, err := time.ParseDuration(c.HTTPTimeout); err != nil {
		return fmt.Errorf("invalid http_timeout %q: %w", c.HTTPTimeout, err)
	}
	return nil
}

// Timeout returns the parsed per-call network timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// Validity returns the catalog staleness window as a duration.
func (c *Config) Validity() time.Duration {
	return time.Duration(c.CacheValidityDays) * 24 * time.Hour
}
