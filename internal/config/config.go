package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/nba-season-fetch/internal/nbastats"
	"gopkg.in/yaml.v3"
)

// Defaults used when no config file overrides them.
const (
	DefaultSeason       = "2025-26"
	DefaultSeasonType   = "Regular Season"
	DefaultOutput       = "current_season.csv"
	DefaultRequestDelay = 1 * time.Second
	DefaultTimeout      = 30 * time.Second
)

// Config describes one run of the fetcher.
type Config struct {
	Season       string
	SeasonType   string
	Output       string
	BaseURL      string        // NBA Stats API root; overridable for testing
	RequestDelay time.Duration // courtesy pause before each upstream call
	Timeout      time.Duration // per-request HTTP timeout
}

// Default returns a Config populated with the baked-in defaults.
func Default() *Config {
	return &Config{
		Season:       DefaultSeason,
		SeasonType:   DefaultSeasonType,
		Output:       DefaultOutput,
		BaseURL:      nbastats.BaseURL,
		RequestDelay: DefaultRequestDelay,
		Timeout:      DefaultTimeout,
	}
}

// rawConfig is the file-side shape; durations arrive as strings ("2s")
// and are parsed with time.ParseDuration.
type rawConfig struct {
	Season       *string `yaml:"season"`
	SeasonType   *string `yaml:"season_type"`
	Output       *string `yaml:"output"`
	BaseURL      *string `yaml:"base_url"`
	RequestDelay *string `yaml:"request_delay"`
	Timeout      *string `yaml:"timeout"`
}

// Load reads a YAML config file and applies it on top of the defaults.
// Fields absent from the file keep their default values.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := Default()
	if raw.Season != nil {
		cfg.Season = *raw.Season
	}
	if raw.SeasonType != nil {
		cfg.SeasonType = *raw.SeasonType
	}
	if raw.Output != nil {
		cfg.Output = *raw.Output
	}
	if raw.BaseURL != nil {
		cfg.BaseURL = *raw.BaseURL
	}
	if raw.RequestDelay != nil {
		if cfg.RequestDelay, err = time.ParseDuration(*raw.RequestDelay); err != nil {
			return nil, fmt.Errorf("parsing request_delay: %w", err)
		}
	}
	if raw.Timeout != nil {
		if cfg.Timeout, err = time.ParseDuration(*raw.Timeout); err != nil {
			return nil, fmt.Errorf("parsing timeout: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Season == "" {
		return fmt.Errorf("season must not be empty")
	}
	if c.SeasonType == "" {
		return fmt.Errorf("season_type must not be empty")
	}
	if c.Output == "" {
		return fmt.Errorf("output must not be empty")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if c.RequestDelay < 0 {
		return fmt.Errorf("request_delay must not be negative")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
