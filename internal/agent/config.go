package agent

import (
	"fmt"
	"os"
	"time"
)

// Config holds model provider parameters. The three model fields select
// which model serves each call type: vision classification, multi-turn
// chat, and conversation summarization.
type Config struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	VisionModel    string `toml:"vision_model"`
	ChatModel      string `toml:"chat_model"`
	SummaryModel   string `toml:"summary_model"`
	RequestTimeout string `toml:"request_timeout"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey         string
	BaseURL        string
	VisionModel    string
	ChatModel      string
	SummaryModel   string
	RequestTimeout string
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.VisionModel != "" {
		c.VisionModel = overlay.VisionModel
	}
	if overlay.ChatModel != "" {
		c.ChatModel = overlay.ChatModel
	}
	if overlay.SummaryModel != "" {
		c.SummaryModel = overlay.SummaryModel
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *Config) loadDefaults() {
	if c.VisionModel == "" {
		c.VisionModel = "gpt-4-vision-preview"
	}
	if c.ChatModel == "" {
		c.ChatModel = "gpt-4-turbo-preview"
	}
	if c.SummaryModel == "" {
		c.SummaryModel = "gpt-3.5-turbo"
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "60s"
	}
}

func (c *Config) loadEnv(env *Env) {
	setString := func(key string, dst *string) {
		if key != "" {
			if v := os.Getenv(key); v != "" {
				*dst = v
			}
		}
	}

	setString(env.APIKey, &c.APIKey)
	setString(env.BaseURL, &c.BaseURL)
	setString(env.VisionModel, &c.VisionModel)
	setString(env.ChatModel, &c.ChatModel)
	setString(env.SummaryModel, &c.SummaryModel)
	setString(env.RequestTimeout, &c.RequestTimeout)
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("api_key required")
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
