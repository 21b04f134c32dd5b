package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults, and
// validates the result. Environment variables are not consulted; use
// LoadConfigWithEnvOverrides for that.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a configuration with every field at its default,
// for callers running without a configuration file.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// LoadConfigWithEnvOverrides loads configuration from a YAML file and
// applies MERIDIAN_* environment variable overrides on top. Overrides always
// take precedence over file values; the merged result is re-validated.
func LoadConfigWithEnvOverrides(path string) (*Config, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed after environment overrides: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies MERIDIAN_SECTION_FIELD environment variables.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("MERIDIAN_LOGGING_LEVEL"); val != "" {
		cfg.Logging.Level = val
	}
	if val := os.Getenv("MERIDIAN_LOGGING_FORMAT"); val != "" {
		cfg.Logging.Format = val
	}
	if val := os.Getenv("MERIDIAN_LOGGING_ADD_SOURCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Logging.AddSource = b
		}
	}

	if val := os.Getenv("MERIDIAN_PARSE_REQUIRE_SEQUENCE"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Parse.RequireSequence = b
		}
	}
	if val := os.Getenv("MERIDIAN_PARSE_STRICT_ATTRIBUTES"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Parse.StrictAttributes = b
		}
	}
	if val := os.Getenv("MERIDIAN_PARSE_STRICT_VALIDATION"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Parse.StrictValidation = b
		}
	}

	if val := os.Getenv("MERIDIAN_WATCH_PATH"); val != "" {
		cfg.Watch.Path = val
	}
	if val := os.Getenv("MERIDIAN_WATCH_DEBOUNCE_INTERVAL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Watch.DebounceInterval = d
		}
	}
	if val := os.Getenv("MERIDIAN_WATCH_EXTENSIONS"); val != "" {
		cfg.Watch.Extensions = strings.Split(val, ",")
	}
	if val := os.Getenv("MERIDIAN_WATCH_RESCAN_SCHEDULE"); val != "" {
		cfg.Watch.RescanSchedule = val
	}
	if val := os.Getenv("MERIDIAN_WATCH_METRICS_ADDRESS"); val != "" {
		cfg.Watch.MetricsAddress = val
	}

	if val := os.Getenv("MERIDIAN_REGISTRY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Registry.Enabled = b
		}
	}
	if val := os.Getenv("MERIDIAN_REGISTRY_DB_PATH"); val != "" {
		cfg.Registry.DBPath = val
	}
	if val := os.Getenv("MERIDIAN_REGISTRY_BUSY_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Registry.BusyTimeout = d
		}
	}
}
