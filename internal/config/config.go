// Package config provides configuration management.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/alexiusacademia/gotank/internal/errors"
	"github.com/alexiusacademia/gotank/internal/logging"
)

// Environment variable names
const (
	EnvCatalog   = "GOTANK_CATALOG"
	EnvAddr      = "GOTANK_ADDR"
	EnvRateLimit = "GOTANK_RATE_LIMIT"
	EnvRateBurst = "GOTANK_RATE_BURST"
	EnvLogLevel  = "GOTANK_LOG_LEVEL"
	EnvLogFormat = "GOTANK_LOG_FORMAT"
	EnvLogOutput = "GOTANK_LOG_OUTPUT"
)

// Config is the main application configuration
type Config struct {
	// CatalogPath is the material catalog source (json, yaml or xlsx).
	// Empty means the built-in table.
	CatalogPath string `json:"catalog_path"`

	// Server contains HTTP server settings
	Server ServerConfig `json:"server"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr"`

	// RateLimit is the sustained requests per second allowed per client IP
	RateLimit float64 `json:"rate_limit"`

	// Burst is the rate limiter bucket size
	Burst int `json:"burst"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":5000",
			RateLimit: 5,
			Burst:     10,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads an optional dotenv file and then the GOTANK_* environment.
// A missing dotenv file is not an error; variables already present in the
// environment take precedence over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(errors.TypeConfig, "cannot read "+envFile, err)
		}
	}

	cfg := Default()

	if v := os.Getenv(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate <= 0 {
			return nil, errors.New(errors.TypeConfig, EnvRateLimit+" must be a positive number").WithContext("value", v)
		}
		cfg.Server.RateLimit = rate
	}
	if v := os.Getenv(EnvRateBurst); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil || burst <= 0 {
			return nil, errors.New(errors.TypeConfig, EnvRateBurst+" must be a positive integer").WithContext("value", v)
		}
		cfg.Server.Burst = burst
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv(EnvLogOutput); v != "" {
		cfg.Logging.Output = v
	}

	return cfg, nil
}
