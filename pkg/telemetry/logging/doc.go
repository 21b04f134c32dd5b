/*
Package logging constructs the structured logger used across the meridian
toolkit.

The logger is a standard *slog.Logger built from the logging section of the
configuration:

	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

Components derive their own loggers with logger.With("component", name) so
every record carries its origin.
*/
package logging
