// Package config loads evernote-mcp configuration from TOML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/SqREL/evernote-mcp/internal/common"
)

// ServerConfig holds MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// EvernoteConfig holds the Evernote API connection settings.
type EvernoteConfig struct {
	BaseURL string `toml:"base_url"`
	APIKey  string `toml:"api_key"`
	Timeout string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *EvernoteConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Config holds all evernote-mcp configuration.
type Config struct {
	Server   ServerConfig         `toml:"server"`
	Evernote EvernoteConfig       `toml:"evernote"`
	Logging  common.LoggingConfig `toml:"logging"`
}

// NewDefaultConfig returns a Config with sensible defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Evernote-MCP",
			Port: "4270",
		},
		Evernote: EvernoteConfig{
			BaseURL: "https://api.evernote.com/v1",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/evernote-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}

// Load loads configuration from a TOML file with defaults and env overrides.
// A missing file is not an error; defaults plus environment apply.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		} else {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// The API key is resolved here, once, at process start; handlers only ever
// see the value captured in the config.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("EVERNOTE_API_KEY"); key != "" {
		cfg.Evernote.APIKey = key
	}
	if url := os.Getenv("EVERNOTE_BASE_URL"); url != "" {
		cfg.Evernote.BaseURL = url
	}
	if port := os.Getenv("EVERNOTE_MCP_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if level := os.Getenv("EVERNOTE_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
