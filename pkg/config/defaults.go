package config

import "time"

// ApplyDefaults fills unset fields with their documented defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	if cfg.Watch.Path == "" {
		cfg.Watch.Path = "."
	}
	if cfg.Watch.DebounceInterval == 0 {
		cfg.Watch.DebounceInterval = 100 * time.Millisecond
	}
	if len(cfg.Watch.Extensions) == 0 {
		cfg.Watch.Extensions = []string{".xml"}
	}
	if cfg.Watch.RescanSchedule == "" {
		cfg.Watch.RescanSchedule = "@every 10m"
	}

	if cfg.Registry.DBPath == "" {
		cfg.Registry.DBPath = "meridian.db"
	}
	if cfg.Registry.BusyTimeout == 0 {
		cfg.Registry.BusyTimeout = 5 * time.Second
	}
}
