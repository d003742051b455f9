// Package config provides configuration loading from YAML files.
package config

import (
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Station   StationConfig   `yaml:"station"`
	Scrape    ScrapeConfig    `yaml:"scrape"`
	Browser   BrowserConfig   `yaml:"browser"`
	Listeners ListenersConfig `yaml:"listeners"`
	Messages  MessagesConfig  `yaml:"messages"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Addr  string `yaml:"addr" default:":8000"`
	Debug bool   `yaml:"debug"`
}

// StationConfig identifies the station being watched.
type StationConfig struct {
	Name     string `yaml:"name" default:"Beta"`
	PageURL  string `yaml:"page_url" default:"https://www.radia.sk/radia/beta/playlist" validate:"url"`
	Timezone string `yaml:"timezone" default:"Europe/Bratislava"`
}

// ScrapeConfig bounds the scraping of the station page.
type ScrapeConfig struct {
	RenderTimeoutSec int    `yaml:"render_timeout_sec" default:"28" validate:"gte=1,lte=120"`
	FetchTimeoutSec  int    `yaml:"fetch_timeout_sec" default:"28" validate:"gte=1,lte=120"`
	UserAgent        string `yaml:"user_agent" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"`
}

// BrowserConfig selects and tunes the page renderer.
type BrowserConfig struct {
	Type     string         `yaml:"type" default:"chromedp" validate:"oneof=chromedp static"`
	Settings map[string]any `yaml:"settings"`
}

// ListenersConfig tunes the listener stream.
type ListenersConfig struct {
	PushIntervalSec int `yaml:"push_interval_sec" default:"15" validate:"gte=1,lte=300"`
}

// MessagesConfig represents user-facing messages.
type MessagesConfig struct {
	NothingPlaying      string `yaml:"nothing_playing" default:"Nothing is playing right now."`
	UpstreamUnavailable string `yaml:"upstream_unavailable" default:"Upstream page unavailable."`
}

// Load loads configuration from a YAML file.
// Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	// Override with environment variables
	cfg.overrideFromEnv()

	// Set defaults using creasty/defaults
	if err := defaults.Set(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// overrideFromEnv overrides config values with environment variables.
func (c *Config) overrideFromEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "struct validation failed")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location resolves the configured station timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Station.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown timezone %q", c.Station.Timezone)
	}
	return loc, nil
}

// RenderTimeout returns the budget for rendering the station page.
func (c *Config) RenderTimeout() time.Duration {
	return time.Duration(c.Scrape.RenderTimeoutSec) * time.Second
}

// FetchTimeout returns the budget for fetching the playlist table.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Scrape.FetchTimeoutSec) * time.Second
}

// PushInterval returns the delay between listener stream pushes.
func (c *Config) PushInterval() time.Duration {
	return time.Duration(c.Listeners.PushIntervalSec) * time.Second
}
