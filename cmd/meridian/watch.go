package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"integon/meridian/pkg/cli"
	"integon/meridian/pkg/config"
	"integon/meridian/pkg/registry"
	"integon/meridian/pkg/telemetry/logging"
	"integon/meridian/pkg/watch"
)

var watchFlags struct {
	path string
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch sequence configuration files and reparse on change",
	Long: `Watch a file or directory of sequence configurations and reparse
each file as it changes.

Every parse attempt is logged and counted in Prometheus metrics. With the
registry enabled, outcomes are also written to a SQLite audit store. A
failed reparse keeps the previous good program; a file only changes state
when a corrected version appears.

Examples:
  # Watch with configuration file
  meridian watch --config meridian.yaml

  # Watch a directory with defaults
  meridian watch --path sequences/`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchFlags.path, "path", "p", "", "file or directory to watch (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadWatchConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return cli.NewConfigError("logging", err.Error())
	}

	var store *registry.Store
	if cfg.Registry.Enabled {
		store, err = registry.NewStoreWithConfig(registry.StoreConfig{
			DBPath:      cfg.Registry.DBPath,
			BusyTimeout: cfg.Registry.BusyTimeout,
		})
		if err != nil {
			return fmt.Errorf("failed to open parse registry: %w", err)
		}
		defer store.Close()
	}

	promRegistry := prometheus.NewRegistry()

	svc, err := watch.NewService(watch.ServiceConfig{
		Watch:    cfg.Watch,
		Parse:    cfg.Parse,
		Logger:   logger,
		Store:    store,
		Registry: promRegistry,
	})
	if err != nil {
		return fmt.Errorf("failed to create watch service: %w", err)
	}

	ctx := cli.SetupSignalHandler()

	if cfg.Watch.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
		server := &http.Server{
			Addr:              cfg.Watch.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics endpoint listening", "address", cfg.Watch.MetricsAddress)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
		defer server.Close()
	}

	return svc.Run(ctx)
}

// loadWatchConfig merges the configuration file, environment overrides, and
// the command's own flags.
func loadWatchConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.LoadConfigWithEnvOverrides(cfgFile)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = config.DefaultConfig()
	}

	if watchFlags.path != "" {
		cfg.Watch.Path = watchFlags.path
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
