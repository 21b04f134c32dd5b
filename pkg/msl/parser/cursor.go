package parser

import (
	"errors"
	"io"

	"integon/meridian/pkg/msl/ast"
	"integon/meridian/pkg/msl/event"
)

// cursor is the parser's view of the event stream: the one buffered
// lookahead event plus the reader it came from. A nil cur means the stream
// is exhausted — the reader returned io.EOF.
type cursor struct {
	events event.Reader
	cur    event.Event
	source string // source name for locations
}

// advance pulls the next event into the lookahead slot. Exhaustion is a
// cursor state, not an error: on io.EOF the lookahead becomes nil and
// advance returns nil, leaving the recognizer to decide whether running out
// of events is legal at its grammar position. Any other reader failure
// (malformed markup, I/O) is returned as-is for the recognizer to classify.
func (c *cursor) advance() error {
	ev, err := c.events.Event()
	switch {
	case err == nil:
		c.cur = ev
		return nil
	case errors.Is(err, io.EOF):
		c.cur = nil
		return nil
	default:
		c.cur = nil
		return err
	}
}

// location builds an ast.Location from event coordinates.
func (c *cursor) location(line, col int) ast.Location {
	return ast.Location{File: c.source, Line: line, Column: col}
}

// here returns the location of the current lookahead, when it carries one.
func (c *cursor) here() ast.Location {
	switch ev := c.cur.(type) {
	case event.StartElement:
		return c.location(ev.Line, ev.Column)
	case event.EndElement:
		return c.location(ev.Line, ev.Column)
	case event.Text:
		return c.location(ev.Line, ev.Column)
	default:
		return ast.Location{File: c.source}
	}
}
