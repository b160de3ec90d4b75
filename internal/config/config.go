// Package config holds server configuration, loaded from defaults and
// INVOICE_QC_* environment variables via viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultAddress      = ":8080"
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 2 * time.Minute
	DefaultLogLevel     = "info"

	// DefaultMaxUploadSize bounds a single uploaded PDF.
	DefaultMaxUploadSize = 50 * 1024 * 1024
)

// Config holds the HTTP server configuration.
type Config struct {
	Address       string
	Env           string
	LogLevel      string
	Debug         bool
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	MaxUploadSize int64
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Address:       DefaultAddress,
		Env:           "production",
		LogLevel:      DefaultLogLevel,
		ReadTimeout:   DefaultReadTimeout,
		WriteTimeout:  DefaultWriteTimeout,
		MaxUploadSize: DefaultMaxUploadSize,
	}
}

// Load builds the configuration from defaults overlaid with
// environment variables (INVOICE_QC_ADDRESS, INVOICE_QC_LOGLEVEL, ...).
func Load() (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetEnvPrefix("INVOICE_QC")
	v.AutomaticEnv()

	v.SetDefault("address", cfg.Address)
	v.SetDefault("env", cfg.Env)
	v.SetDefault("loglevel", cfg.LogLevel)
	v.SetDefault("debug", cfg.Debug)
	v.SetDefault("readtimeout", cfg.ReadTimeout)
	v.SetDefault("writetimeout", cfg.WriteTimeout)
	v.SetDefault("maxuploadsize", cfg.MaxUploadSize)

	cfg.Address = v.GetString("address")
	cfg.Env = v.GetString("env")
	cfg.LogLevel = v.GetString("loglevel")
	cfg.Debug = v.GetBool("debug")
	cfg.ReadTimeout = v.GetDuration("readtimeout")
	cfg.WriteTimeout = v.GetDuration("writetimeout")
	cfg.MaxUploadSize = v.GetInt64("maxuploadsize")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("address must not be empty")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}
	return nil
}
