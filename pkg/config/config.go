package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for the scanner engine.
// Configuration can come from a YAML file (config.yaml) or environment
// variables. Environment variables always override YAML values.
type Config struct {
	Env string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`

	// Scan timing and sizing defaults
	Scan ScanConfig `yaml:"scan"`

	// Logging configuration
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
}

// ScanConfig holds scan budget and sampling limits.
type ScanConfig struct {
	// ConnectTimeoutSeconds bounds how long an engine connection attempt may take.
	ConnectTimeoutSeconds int `yaml:"connect_timeout_seconds" env:"SCAN_CONNECT_TIMEOUT_SECONDS" env-default:"15"`
	// TableTimeoutSeconds bounds how long one table's sampling may take.
	TableTimeoutSeconds int `yaml:"table_timeout_seconds" env:"SCAN_TABLE_TIMEOUT_SECONDS" env-default:"60"`
	// MaxScanTimeSeconds is the whole-scan wall-clock budget.
	MaxScanTimeSeconds int `yaml:"max_scan_time_seconds" env:"SCAN_MAX_SCAN_TIME_SECONDS" env-default:"300"`
	// MaxWorkers caps the parallel scan worker count regardless of strategy.
	MaxWorkers int `yaml:"max_workers" env:"SCAN_MAX_WORKERS" env-default:"3"`
	// MaxSampleSize caps rows sampled per table regardless of strategy.
	MaxSampleSize int `yaml:"max_sample_size" env:"SCAN_MAX_SAMPLE_SIZE" env-default:"1000"`
}

// ConnectTimeout returns the connect timeout as a duration.
func (c ScanConfig) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// TableTimeout returns the per-table timeout as a duration.
func (c ScanConfig) TableTimeout() time.Duration {
	return time.Duration(c.TableTimeoutSeconds) * time.Second
}

// MaxScanTime returns the whole-scan budget as a duration.
func (c ScanConfig) MaxScanTime() time.Duration {
	return time.Duration(c.MaxScanTimeSeconds) * time.Second
}

// Load reads configuration from config.yaml with environment variable
// overrides. If config.yaml does not exist, environment variables and
// defaults are used alone.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid scan configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scan.ConnectTimeoutSeconds <= 0 {
		return fmt.Errorf("connect_timeout_seconds must be positive")
	}
	if c.Scan.TableTimeoutSeconds <= 0 {
		return fmt.Errorf("table_timeout_seconds must be positive")
	}
	if c.Scan.MaxScanTimeSeconds <= 0 {
		return fmt.Errorf("max_scan_time_seconds must be positive")
	}
	if c.Scan.MaxWorkers <= 0 {
		return fmt.Errorf("max_workers must be positive")
	}
	return nil
}
