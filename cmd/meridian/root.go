package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "meridian",
	Short: "Meridian - mediation sequence toolkit",
	Long: `Meridian parses, lints, reformats, and watches mediation sequence
configurations in the restricted inSequence dialect.

The dialect covers inSequence blocks containing log and property mediators.
Parsed configurations re-render to a canonical textual form, so fmt acts as
a normalizer and lint as a gatekeeper for unsupported mediators.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
