package config

import (
	"fmt"
	"os"
	"strings"

	"stock-dashboard/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides validation and lookup helpers.
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new Config instance from a YAML file.
func NewConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	if c.Storage.DBType == "" {
		return fmt.Errorf("database type cannot be empty")
	}
	if c.Storage.DBType == "sqlite" && c.Storage.DBPath == "" {
		return fmt.Errorf("database path cannot be empty for sqlite")
	}
	if c.Storage.DBType == "postgres" && c.Storage.DBConnectionString == "" {
		return fmt.Errorf("connection string cannot be empty for postgres")
	}
	if c.Storage.RecentLookupLimit <= 0 {
		return fmt.Errorf("recent lookup limit must be greater than 0")
	}

	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}

	if c.Providers.QuoteURL == "" || c.Providers.ChartURL == "" {
		return fmt.Errorf("provider endpoints cannot be empty")
	}

	d := c.Dashboard
	if len(d.Periods) == 0 || len(d.Intervals) == 0 {
		return fmt.Errorf("dashboard periods and intervals cannot be empty")
	}
	if !c.ValidPeriod(d.DefaultPeriod) {
		return fmt.Errorf("default period '%s' is not an offered period", d.DefaultPeriod)
	}
	if !c.ValidInterval(d.DefaultInterval) {
		return fmt.Errorf("default interval '%s' is not an offered interval", d.DefaultInterval)
	}
	if d.DefaultWindow < 1 {
		return fmt.Errorf("default bollinger window must be at least 1")
	}
	if d.DefaultStdDev <= 0 {
		return fmt.Errorf("default std dev multiplier must be positive")
	}
	if strings.TrimSpace(d.DefaultSymbol) == "" {
		return fmt.Errorf("default symbol cannot be empty")
	}

	return nil
}

// -----------------------------------------------------------------------------

// ValidPeriod reports whether period is one of the offered history periods.
func (c *Config) ValidPeriod(period string) bool {
	for _, p := range c.Dashboard.Periods {
		if p == period {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------

// ValidInterval reports whether interval is one of the offered candle intervals.
func (c *Config) ValidInterval(interval string) bool {
	for _, i := range c.Dashboard.Intervals {
		if i == interval {
			return true
		}
	}
	return false
}
