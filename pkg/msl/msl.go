package msl

import (
	"bytes"
	"fmt"
	"os"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/parser"
	"integon/meridian/pkg/msl/validator"
)

// MaxFileSize bounds how large a sequence configuration file may be. The
// tokenizer reads the whole document in one pass, so an unbounded file is an
// unbounded allocation.
const MaxFileSize = 10 * 1024 * 1024 // 10MB

// ParseFile parses the sequence configuration at path.
func ParseFile(path string) (*ast.Program, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to access file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}
	if info.Size() > MaxFileSize {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("file size %d exceeds maximum %d bytes", info.Size(), MaxFileSize),
			Location: ast.Location{File: path},
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeIO,
			Message:  fmt.Sprintf("failed to open file: %v", err),
			Location: ast.Location{File: path},
			Err:      err,
		}
	}
	defer f.Close()

	return parser.NewParser().WithSourceName(path).Parse(f)
}

// ParseBytes parses sequence configuration markup from memory. sourceName
// appears in node and error locations.
func ParseBytes(data []byte, sourceName string) (*ast.Program, error) {
	return parser.NewParser().WithSourceName(sourceName).Parse(bytes.NewReader(data))
}

// ParseAndValidate parses the file at path and runs the validator's default
// checks over the result.
func ParseAndValidate(path string) (*ast.Program, error) {
	program, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	if err := validator.NewValidator().Validate(program); err != nil {
		return nil, err
	}
	return program, nil
}

// ParseAndValidateBytes is ParseAndValidate over an in-memory document.
func ParseAndValidateBytes(data []byte, sourceName string) (*ast.Program, error) {
	program, err := ParseBytes(data, sourceName)
	if err != nil {
		return nil, err
	}
	if err := validator.NewValidator().Validate(program); err != nil {
		return nil, err
	}
	return program, nil
}

// Render returns the canonical textual form of a program. It is the inverse
// of parsing for attribute values free of markup-special characters.
func Render(program *ast.Program) string {
	return program.String()
}
