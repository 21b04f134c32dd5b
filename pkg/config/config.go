package config

import "time"

// Config is the root configuration for the meridian toolkit.
type Config struct {
	// Logging configures structured log output.
	Logging LoggingConfig `yaml:"logging"`

	// Parse configures grammar policy applied by lint, fmt, and watch.
	Parse ParseConfig `yaml:"parse"`

	// Watch configures the file-watching reparse service.
	Watch WatchConfig `yaml:"watch"`

	// Registry configures the parse-audit store.
	Registry RegistryConfig `yaml:"registry"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the output format: "json" or "text".
	// Default: "text"
	Format string `yaml:"format"`

	// AddSource includes file:line in log records.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// ParseConfig controls the grammar policy knobs the parser and validator
// expose.
type ParseConfig struct {
	// RequireSequence rejects bare mediators at the document top level.
	// Default: false (the historical grammar allows them)
	RequireSequence bool `yaml:"require_sequence"`

	// StrictAttributes turns missing property name/value attributes into
	// errors instead of empty strings.
	// Default: false
	StrictAttributes bool `yaml:"strict_attributes"`

	// StrictValidation promotes advisory validator findings to errors.
	// Default: false
	StrictValidation bool `yaml:"strict_validation"`
}

// WatchConfig controls the watch service.
type WatchConfig struct {
	// Path is the file or directory of sequence configurations to watch.
	// Default: "."
	Path string `yaml:"path"`

	// DebounceInterval is the quiet period after a file event before the
	// file is reparsed.
	// Default: 100ms
	DebounceInterval time.Duration `yaml:"debounce_interval"`

	// Extensions lists the file extensions treated as sequence
	// configurations.
	// Default: [".xml"]
	Extensions []string `yaml:"extensions"`

	// RescanSchedule is a cron expression for periodic full rescans,
	// catching events the file watcher missed. Empty disables rescans.
	// Default: "@every 10m"
	RescanSchedule string `yaml:"rescan_schedule"`

	// MetricsAddress is the listen address for the Prometheus /metrics
	// endpoint. Empty disables the endpoint.
	// Default: ""
	MetricsAddress string `yaml:"metrics_address"`
}

// RegistryConfig controls the parse-audit store.
type RegistryConfig struct {
	// Enabled turns parse-outcome recording on.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// DBPath is the SQLite database file path.
	// Default: "meridian.db"
	DBPath string `yaml:"db_path"`

	// BusyTimeout is how long to wait for database locks before failing.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}
