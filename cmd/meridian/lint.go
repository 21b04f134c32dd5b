package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"integon/meridian/pkg/cli"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/parser"
	"integon/meridian/pkg/msl/validator"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate sequence configuration files",
	Long: `Validate mediation sequence configurations for syntax and semantic errors.

The lint command parses configuration files and reports every problem:
  - Markup syntax and element balance
  - Unsupported mediators (anything other than log and property)
  - Missing required attributes (log level)
  - Advisory findings in strict mode (duplicate properties, unconventional
    log levels, missing property attributes)

Examples:
  # Lint single file
  meridian lint --file inbound.xml

  # Lint directory
  meridian lint --dir sequences/

  # Strict mode
  meridian lint --file inbound.xml --strict

  # JSON output for CI/CD
  meridian lint --file inbound.xml --format json`,
	RunE: lintSequences,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "sequence configuration file to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of sequence configuration files")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "enable strict attribute and validation checks")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

func lintSequences(cmd *cobra.Command, args []string) error {
	files, err := collectSequenceFiles(lintFlags.file, lintFlags.dir)
	if err != nil {
		return err
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateSequenceFile(file))
	}

	if lintFlags.format == "json" {
		return outputJSON(results)
	}
	return outputText(results)
}

// collectSequenceFiles resolves the --file and --dir flags into a file list.
func collectSequenceFiles(file, dir string) ([]string, error) {
	if file == "" && dir == "" {
		return nil, fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if file != "" {
		files = append(files, file)
	}
	if dir != "" {
		matches, err := filepath.Glob(filepath.Join(dir, "*.xml"))
		if err != nil {
			return nil, fmt.Errorf("failed to list sequence files: %w", err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no sequence configuration files found")
	}
	return files, nil
}

// ValidationResult represents the validation result for a single file.
type ValidationResult struct {
	File   string            `json:"file"`
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Message    string `json:"message"`
	Type       string `json:"type,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func validateSequenceFile(path string) ValidationResult {
	result := ValidationResult{
		File:  path,
		Valid: true,
	}

	f, err := os.Open(path)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Message: fmt.Sprintf("failed to open file: %v", err),
			Type:    string(mslErrors.ErrorTypeIO),
		})
		return result
	}
	defer f.Close()

	program, err := parser.NewParser().
		WithStrictAttributes(lintFlags.strict).
		WithSourceName(path).
		Parse(f)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, toValidationErrors(err)...)
		return result
	}

	v := validator.NewValidator().WithStrictMode(lintFlags.strict)
	if err := v.Validate(program); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, toValidationErrors(err)...)
	}

	return result
}

// toValidationErrors flattens parse and validation failures into reportable
// entries.
func toValidationErrors(err error) []ValidationError {
	if errList, ok := err.(*mslErrors.ErrorList); ok {
		out := make([]ValidationError, 0, len(errList.Errors))
		for _, e := range errList.Errors {
			out = append(out, ValidationError{
				Line:       e.Location.Line,
				Column:     e.Location.Column,
				Message:    e.Message,
				Type:       string(e.Type),
				Suggestion: e.Suggestion,
			})
		}
		return out
	}

	var mslErr *mslErrors.Error
	if mslErrors.AsError(err, &mslErr) {
		return []ValidationError{{
			Line:       mslErr.Location.Line,
			Column:     mslErr.Location.Column,
			Message:    mslErr.Message,
			Type:       string(mslErr.Type),
			Suggestion: mslErr.Suggestion,
		}}
	}

	return []ValidationError{{Message: err.Error()}}
}

func outputText(results []ValidationResult) error {
	totalErrors := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if result.Valid {
			fmt.Println("✓ Sequence configuration valid")
		}

		for _, err := range result.Errors {
			fmt.Printf("✗ Error: %s", err.Message)
			if err.Line > 0 {
				fmt.Printf(" (line %d", err.Line)
				if err.Column > 0 {
					fmt.Printf(", col %d", err.Column)
				}
				fmt.Print(")")
			}
			if err.Type != "" {
				fmt.Printf(" [%s]", err.Type)
			}
			fmt.Println()
			if err.Suggestion != "" {
				fmt.Printf("  suggestion: %s\n", err.Suggestion)
			}
			totalErrors++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d file(s), %d error(s)\n", len(results), totalErrors)

	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}

	return nil
}

func outputJSON(results []ValidationResult) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
