// Package config loads gnews-mcp configuration once at startup.
//
// Values come from an optional YAML file and are then overridden by
// environment variables. The resulting Config is passed explicitly to each
// component; nothing reads the environment per call.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/gnews-mcp/internal/gnews"
)

// Environment variables
const (
	EnvAPIKey        = "GNEWS_API_KEY"
	EnvBaseURL       = "GNEWS_BASE_URL"
	EnvTimeout       = "GNEWS_TIMEOUT"
	EnvLogLevel      = "GNEWS_LOG_LEVEL"
	EnvListenAddr    = "GNEWS_LISTEN_ADDR"
	EnvStorageDriver = "GNEWS_STORAGE_DRIVER"
	EnvStoragePath   = "GNEWS_STORAGE_PATH"
	EnvMailFrom      = "GNEWS_MAIL_FROM"
)

// Storage drivers
const (
	StorageMock   = "mock"
	StorageSQLite = "sqlite"
)

// Defaults
const (
	DefaultListenAddr = "localhost:10000"
	DefaultMailFrom   = "MCP Workspace <workspace@localhost>"
)

// Config holds all gnews-mcp configuration.
type Config struct {
	GNews    GNewsConfig   `yaml:"gnews"`
	Listen   ListenConfig  `yaml:"listen"`
	Storage  StorageConfig `yaml:"storage"`
	Mail     MailConfig    `yaml:"mail"`
	LogLevel string        `yaml:"log_level"`
}

// GNewsConfig configures the upstream fetcher.
type GNewsConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ListenConfig configures the HTTP host.
type ListenConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig selects the documentation/email backing store.
type StorageConfig struct {
	// Driver is "mock" (default) or "sqlite".
	Driver string `yaml:"driver"`
	// Path is the SQLite database file; required for the sqlite driver.
	Path string `yaml:"path"`
}

// MailConfig holds the sender used when composing written emails.
type MailConfig struct {
	From string `yaml:"from"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	return &Config{
		GNews: GNewsConfig{
			BaseURL: gnews.DefaultBaseURL,
			Timeout: gnews.DefaultTimeout,
		},
		Listen:   ListenConfig{Address: DefaultListenAddr},
		Storage:  StorageConfig{Driver: StorageMock},
		Mail:     MailConfig{From: DefaultMailFrom},
		LogLevel: "info",
	}
}

// Load reads path (when non-empty) over the defaults, then applies the
// environment. A named file that does not exist is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.GNews.APIKey = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.GNews.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		c.GNews.Timeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Listen.Address = v
	}
	if v := os.Getenv(EnvStorageDriver); v != "" {
		c.Storage.Driver = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStoragePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvMailFrom); v != "" {
		c.Mail.From = v
	}
	return nil
}

// Validate checks settings shared by every command.
func (c *Config) Validate() error {
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.GNews.Timeout < 0 {
		return fmt.Errorf("gnews.timeout must not be negative (got %s)", c.GNews.Timeout)
	}
	switch c.Storage.Driver {
	case "", StorageMock:
	case StorageSQLite:
		if c.Storage.Path == "" {
			return errors.New("storage.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q (valid: %s, %s)", c.Storage.Driver, StorageMock, StorageSQLite)
	}
	return nil
}

// ValidateNews additionally requires the upstream credential.
func (c *Config) ValidateNews() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.GNews.APIKey == "" {
		return gnews.ErrMissingAPIKey
	}
	return nil
}

// HasAPIKey reports whether a news credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.GNews.APIKey != ""
}

// GNewsClientConfig converts the upstream section for gnews.NewClient.
func (c *Config) GNewsClientConfig() gnews.Config {
	return gnews.Config{
		APIKey:  c.GNews.APIKey,
		BaseURL: c.GNews.BaseURL,
		Timeout: c.GNews.Timeout,
	}
}
