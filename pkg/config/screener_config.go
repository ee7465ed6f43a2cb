// Package config provides typed YAML configuration for the screener shells
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/curve-screener/pkg/curve"
)

// ScreenerConfig is the complete configuration for the screener shells.
type ScreenerConfig struct {
	Feed    FeedConfig    `yaml:"feed"`
	Engine  curve.Config  `yaml:"engine"`
	Publish PublishConfig `yaml:"publish"`
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`

	// RefreshInterval is how often the daemon re-evaluates the signal
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// FeedConfig describes the daily-bar provider and the instrument pair.
type FeedConfig struct {
	BaseURL    string        `yaml:"base_url"`
	SymbolA    string        `yaml:"symbol_a"`    // e.g. "ZN=F"
	SymbolB    string        `yaml:"symbol_b"`    // e.g. "ZT=F"
	WindowDays int           `yaml:"window_days"` // trailing trading days to request
	Timeout    time.Duration `yaml:"timeout"`
}

// PublishConfig describes the NATS signal publication.
type PublishConfig struct {
	Enabled  bool   `yaml:"enabled"`
	NATSAddr string `yaml:"nats_addr"`
	Subject  string `yaml:"subject"`
}

// APIConfig describes the daemon's HTTP status/metrics listener.
type APIConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

// LoggingConfig describes logger behavior.
type LoggingConfig struct {
	Level   string `yaml:"level"` // debug, info, warn, error
	Console bool   `yaml:"console"`
}

// LoadScreenerConfig loads configuration from a YAML file. Engine parameters
// start from curve.DefaultConfig, so a file only needs the values it wants to
// override.
func LoadScreenerConfig(filepath string) (*ScreenerConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := ScreenerConfig{Engine: curve.DefaultConfig()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate fills defaults and rejects unusable configurations.
func (c *ScreenerConfig) Validate() error {
	if c.Feed.BaseURL == "" {
		return fmt.Errorf("feed.base_url is required")
	}
	if c.Feed.SymbolA == "" || c.Feed.SymbolB == "" {
		return fmt.Errorf("feed.symbol_a and feed.symbol_b are required")
	}
	if c.Feed.WindowDays == 0 {
		c.Feed.WindowDays = 260
	}
	if c.Feed.WindowDays < c.Engine.ZLookback {
		return fmt.Errorf("feed.window_days (%d) is smaller than engine.z_lookback (%d)",
			c.Feed.WindowDays, c.Engine.ZLookback)
	}
	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 10 * time.Second
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.Publish.Enabled {
		if c.Publish.NATSAddr == "" {
			c.Publish.NATSAddr = "nats://localhost:4222"
		}
		if c.Publish.Subject == "" {
			c.Publish.Subject = "signals.curve"
		}
	}

	if c.API.Enabled {
		if c.API.Host == "" {
			c.API.Host = "localhost"
		}
		if c.API.Port == 0 {
			c.API.Port = 8090
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.RefreshInterval == 0 {
		c.RefreshInterval = time.Hour
	}

	return nil
}
