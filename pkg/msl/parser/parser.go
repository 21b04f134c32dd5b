package parser

import (
	"io"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/event"
)

// Element and attribute names of the supported vocabulary.
const (
	elemInSequence = "inSequence"
	elemLog        = "log"
	elemProperty   = "property"

	attrLevel = "level"
	attrName  = "name"
	attrValue = "value"
)

// Parser recognizes the MSL grammar over a structural event stream.
// The zero configuration matches the historical grammar: bare mediators are
// accepted at the top level and missing property attributes default to "".
type Parser struct {
	requireSequence  bool
	strictAttributes bool
	sourceName       string
}

// NewParser creates a parser with the default (lenient) configuration.
func NewParser() *Parser {
	return &Parser{}
}

// WithRequireSequence controls whether mediators may appear bare at the top
// level. When true, only inSequence blocks are accepted there.
func (p *Parser) WithRequireSequence(require bool) *Parser {
	p.requireSequence = require
	return p
}

// WithStrictAttributes controls the policy for missing property attributes.
// When true, a property without a name or value attribute is a
// malformed-property error instead of defaulting to the empty string.
func (p *Parser) WithStrictAttributes(strict bool) *Parser {
	p.strictAttributes = strict
	return p
}

// WithSourceName sets the source name recorded in node and error locations,
// typically the file path the input came from.
func (p *Parser) WithSourceName(name string) *Parser {
	p.sourceName = name
	return p
}

// Parse tokenizes raw markup from r and parses it into a Program.
func (p *Parser) Parse(r io.Reader) (*ast.Program, error) {
	return p.ParseEvents(event.NewXMLReader(r))
}

// ParseEvents parses a Program from an already-tokenized event stream. The
// stream is consumed through its EndDocument marker on success.
func (p *Parser) ParseEvents(events event.Reader) (*ast.Program, error) {
	c := &cursor{events: events, source: p.sourceName}
	if err := c.advance(); err != nil {
		return nil, p.syntaxError(c, err)
	}
	return p.parseProgram(c)
}

// syntaxError wraps a tokenizer failure that occurred outside any open
// element.
func (p *Parser) syntaxError(c *cursor, cause error) *mslErrors.Error {
	return &mslErrors.Error{
		Type:     mslErrors.ErrorTypeSyntax,
		Message:  "malformed markup: " + cause.Error(),
		Location: ast.Location{File: c.source},
		Err:      cause,
	}
}
