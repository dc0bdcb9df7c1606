package config

import (
	"os"
	"runtime"
	"strconv"

	"probcalc/internal/errors"
)

// DefaultPrecision is the number of significant decimal digits carried by
// exact probability results.
const DefaultPrecision = 200

// Config represents the complete engine configuration
type Config struct {
	Precision PrecisionConfig
	Batch     BatchConfig
	Log       LogConfig
}

// PrecisionConfig holds exact-arithmetic settings
type PrecisionConfig struct {
	Digits int
}

// BatchConfig holds parallel batch executor settings
type BatchConfig struct {
	Workers int
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Default returns the built-in configuration without reading the environment
func Default() *Config {
	return &Config{
		Precision: PrecisionConfig{Digits: DefaultPrecision},
		Batch:     BatchConfig{Workers: runtime.NumCPU()},
		Log:       LogConfig{Level: "INFO"},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Precision: PrecisionConfig{
			Digits: getEnvIntOrDefault("PROBCALC_PRECISION", DefaultPrecision),
		},
		Batch: BatchConfig{
			Workers: getEnvIntOrDefault("PROBCALC_WORKERS", runtime.NumCPU()),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Precision.Digits < 1 {
		return errors.ConfigInvalid("precision must be at least one significant digit")
	}
	if c.Batch.Workers < 1 {
		return errors.ConfigInvalid("batch executor needs at least one worker")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
