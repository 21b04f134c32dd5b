package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Validate checks a fully-defaulted configuration for inconsistencies.
func Validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}

	if cfg.Watch.DebounceInterval < 0 {
		return fmt.Errorf("watch.debounce_interval: must not be negative")
	}
	for _, ext := range cfg.Watch.Extensions {
		if ext == "" || ext[0] != '.' {
			return fmt.Errorf("watch.extensions: %q must start with a dot", ext)
		}
	}
	if cfg.Watch.RescanSchedule != "" {
		if _, err := cron.ParseStandard(cfg.Watch.RescanSchedule); err != nil {
			return fmt.Errorf("watch.rescan_schedule: invalid cron expression %q: %w",
				cfg.Watch.RescanSchedule, err)
		}
	}

	if cfg.Registry.Enabled && cfg.Registry.DBPath == "" {
		return fmt.Errorf("registry.db_path: required when the registry is enabled")
	}
	if cfg.Registry.BusyTimeout < 0 {
		return fmt.Errorf("registry.busy_timeout: must not be negative")
	}

	return nil
}
