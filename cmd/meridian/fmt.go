package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"integon/meridian/pkg/cli"
	"integon/meridian/pkg/msl"
)

var fmtFlags struct {
	file  string
	dir   string
	write bool
}

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Canonically reformat sequence configuration files",
	Long: `Reformat mediation sequence configurations into canonical form.

The canonical form drops XML declarations, insignificant whitespace, and
attribute quoting variations. A file that parses cleanly always reformats
to the same text, so fmt works as a normalizer before diffing or review.

Examples:
  # Print the canonical form
  meridian fmt --file inbound.xml

  # Rewrite files in place
  meridian fmt --dir sequences/ --write`,
	RunE: fmtSequences,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().StringVarP(&fmtFlags.file, "file", "f", "", "sequence configuration file to reformat")
	fmtCmd.Flags().StringVarP(&fmtFlags.dir, "dir", "d", "", "directory of sequence configuration files")
	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "write result back instead of printing")
}

func fmtSequences(cmd *cobra.Command, args []string) error {
	files, err := collectSequenceFiles(fmtFlags.file, fmtFlags.dir)
	if err != nil {
		return err
	}

	failed := 0
	for _, file := range files {
		if err := formatSequenceFile(file, fmtFlags.write); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", file, err)
			failed++
		}
	}

	if failed > 0 {
		return cli.NewCommandError("fmt", fmt.Errorf("%d file(s) failed to reformat", failed))
	}
	return nil
}

func formatSequenceFile(path string, write bool) error {
	program, err := msl.ParseFile(path)
	if err != nil {
		return err
	}

	rendered := msl.Render(program)

	if !write {
		fmt.Println(rendered)
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.WriteFile(path, []byte(rendered+"\n"), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
