package ast

import "fmt"

// Location records where a node (or error) originated in the source document.
type Location struct {
	File   string // source name, e.g. a file path or "memory://…"
	Line   int    // 1-based
	Column int    // 1-based
}

// String returns the location as "file:line:column".
func (l Location) String() string {
	if l.File == "" && l.Line == 0 {
		return "<unknown>"
	}
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid reports whether the location carries usable position information.
func (l Location) IsValid() bool {
	return l.Line > 0
}
