// Package config loads and finalizes the service configuration from
// config.toml, an optional environment overlay, and GREENBOT_* variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/greenswap/greenbot/internal/agent"
	"github.com/greenswap/greenbot/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvGreenbotEnv             = "GREENBOT_ENV"
	EnvGreenbotShutdownTimeout = "GREENBOT_SHUTDOWN_TIMEOUT"
	EnvGreenbotVersion         = "GREENBOT_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "GREENBOT_DB_HOST",
	Port:            "GREENBOT_DB_PORT",
	Name:            "GREENBOT_DB_NAME",
	User:            "GREENBOT_DB_USER",
	Password:        "GREENBOT_DB_PASSWORD",
	SSLMode:         "GREENBOT_DB_SSL_MODE",
	MaxOpenConns:    "GREENBOT_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "GREENBOT_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "GREENBOT_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "GREENBOT_DB_CONN_TIMEOUT",
}

var agentEnv = &agent.Env{
	APIKey:         "GREENBOT_AGENT_API_KEY",
	BaseURL:        "GREENBOT_AGENT_BASE_URL",
	VisionModel:    "GREENBOT_AGENT_VISION_MODEL",
	ChatModel:      "GREENBOT_AGENT_CHAT_MODEL",
	SummaryModel:   "GREENBOT_AGENT_SUMMARY_MODEL",
	RequestTimeout: "GREENBOT_AGENT_REQUEST_TIMEOUT",
}

// Config is the root configuration for the GreenBot service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	Agent           agent.Config    `toml:"agent"`
	API             APIConfig       `toml:"api"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
}

// Env returns the GREENBOT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvGreenbotEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Agent.Merge(&overlay.Agent)
	c.API.Merge(&overlay.API)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Agent.Finalize(agentEnv); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvGreenbotShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvGreenbotVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvGreenbotEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
