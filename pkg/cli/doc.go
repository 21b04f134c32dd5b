/*
Package cli provides command-line utilities for the meridian command.

Error Types:

ConfigError and CommandError give commands typed failures so exit handling
can distinguish bad configuration from a failed operation:

	return cli.NewCommandError("lint", fmt.Errorf("validation failed"))

Signal Handling:

For graceful shutdown of the watch service on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
