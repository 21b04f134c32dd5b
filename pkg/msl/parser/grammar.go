package parser

import (
	"fmt"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/event"
)

// parseProgram recognizes the top-level rule: an optional document-start
// marker, then nodes until the document-end marker.
func (p *Parser) parseProgram(c *cursor) (*ast.Program, error) {
	if _, ok := c.cur.(event.StartDocument); ok {
		if err := c.advance(); err != nil {
			return nil, p.syntaxError(c, err)
		}
	}

	program := &ast.Program{}
	for {
		switch ev := c.cur.(type) {
		case event.EndDocument:
			return program, nil

		case event.StartElement:
			var (
				node ast.Node
				err  error
			)
			switch {
			case ev.Name == elemInSequence:
				node, err = p.parseInSequence(c)
			case p.requireSequence:
				err = &mslErrors.Error{
					Type:       mslErrors.ErrorTypeUnexpectedEvent,
					Message:    fmt.Sprintf("element <%s> is not permitted at the top level", ev.Name),
					Element:    ev.Name,
					Location:   c.here(),
					Suggestion: "wrap mediators in an <inSequence> block",
				}
			default:
				node, err = p.parseMediator(c)
			}
			if err != nil {
				return nil, err
			}
			program.Nodes = append(program.Nodes, node)

		case nil:
			return nil, &mslErrors.Error{
				Type:     mslErrors.ErrorTypeUnexpectedEOF,
				Message:  "event stream ended before the document end marker",
				Location: ast.Location{File: c.source},
			}

		default:
			return nil, p.unexpectedEvent(c, "an inSequence block or mediator")
		}
	}
}

// parseInSequence recognizes <inSequence> mediator* </inSequence>. The
// lookahead must be the inSequence start tag on entry; on success it has
// advanced past the matching close tag.
func (p *Parser) parseInSequence(c *cursor) (*ast.InSequence, error) {
	open := c.cur.(event.StartElement)
	seq := &ast.InSequence{Location: c.location(open.Line, open.Column)}
	if err := c.advance(); err != nil {
		return nil, p.unbalanced(elemInSequence, seq.Location, err)
	}

	for {
		switch ev := c.cur.(type) {
		case event.EndElement:
			if ev.Name != elemInSequence {
				return nil, p.closedBy(elemInSequence, ev, c)
			}
			if err := c.advance(); err != nil {
				return nil, p.syntaxError(c, err)
			}
			return seq, nil

		case nil, event.EndDocument:
			return nil, p.endedInside(elemInSequence, seq.Location)

		default:
			med, err := p.parseMediator(c)
			if err != nil {
				return nil, err
			}
			seq.Mediators = append(seq.Mediators, med)
		}
	}
}

// parseMediator dispatches on the local name of the current start tag.
func (p *Parser) parseMediator(c *cursor) (ast.Mediator, error) {
	switch ev := c.cur.(type) {
	case event.StartElement:
		switch ev.Name {
		case elemLog:
			return p.parseLog(c)
		case elemProperty:
			return p.parseProperty(c)
		default:
			return nil, &mslErrors.Error{
				Type:       mslErrors.ErrorTypeUnsupportedMediator,
				Message:    fmt.Sprintf("not a supported mediator: element %q", ev.Name),
				Element:    ev.Name,
				Location:   c.here(),
				Suggestion: "supported mediators are <log> and <property>",
			}
		}

	case event.EndElement:
		// A close tag where a mediator is expected means some open element
		// was never closed.
		return nil, &mslErrors.Error{
			Type:     mslErrors.ErrorTypeUnbalancedElement,
			Message:  fmt.Sprintf("close tag </%s> where a mediator was expected", ev.Name),
			Element:  ev.Name,
			Location: c.here(),
		}

	default:
		return nil, p.unexpectedEvent(c, "a mediator start tag")
	}
}

// parseLog recognizes <log level="..."> property* </log>. The level
// attribute is required; the body may contain only property mediators.
func (p *Parser) parseLog(c *cursor) (*ast.LogMediator, error) {
	open := c.cur.(event.StartElement)
	loc := c.location(open.Line, open.Column)

	level, ok := open.Attribute(attrLevel)
	if !ok {
		return nil, &mslErrors.Error{
			Type:       mslErrors.ErrorTypeMalformedLog,
			Message:    `log mediator is missing its required "level" attribute`,
			Element:    elemLog,
			Location:   loc,
			Suggestion: `add level="simple", "headers", "full", or "custom"`,
		}
	}

	log := &ast.LogMediator{Level: level, Location: loc}
	if err := c.advance(); err != nil {
		return nil, p.unbalanced(elemLog, loc, err)
	}

	for {
		switch ev := c.cur.(type) {
		case event.EndElement:
			if ev.Name != elemLog {
				return nil, p.closedBy(elemLog, ev, c)
			}
			if err := c.advance(); err != nil {
				return nil, p.syntaxError(c, err)
			}
			return log, nil

		case nil, event.EndDocument:
			return nil, p.endedInside(elemLog, loc)

		default:
			med, err := p.parseMediator(c)
			if err != nil {
				return nil, err
			}
			prop, ok := med.(*ast.PropertyMediator)
			if !ok {
				return nil, &mslErrors.Error{
					Type:     mslErrors.ErrorTypeUnexpectedEvent,
					Message:  "only property mediators may appear inside a log body",
					Element:  elemLog,
					Location: loc,
				}
			}
			log.Properties = append(log.Properties, prop)
		}
	}
}

// parseProperty recognizes the empty-content <property name="..."
// value="..."/> element: the start tag and its own end tag, nothing between.
func (p *Parser) parseProperty(c *cursor) (*ast.PropertyMediator, error) {
	open := c.cur.(event.StartElement)
	loc := c.location(open.Line, open.Column)

	name, hasName := open.Attribute(attrName)
	value, hasValue := open.Attribute(attrValue)
	if p.strictAttributes && !(hasName && hasValue) {
		missing := attrName
		if hasName {
			missing = attrValue
		}
		return nil, &mslErrors.Error{
			Type:       mslErrors.ErrorTypeMalformedProperty,
			Message:    fmt.Sprintf("property mediator is missing its %q attribute", missing),
			Element:    elemProperty,
			Location:   loc,
			Suggestion: fmt.Sprintf("add %s=\"...\" or disable strict attribute mode", missing),
		}
	}

	prop := &ast.PropertyMediator{Name: name, Value: value, Location: loc}
	if err := c.advance(); err != nil {
		return nil, p.unbalanced(elemProperty, loc, err)
	}

	end, ok := c.cur.(event.EndElement)
	if !ok {
		switch c.cur.(type) {
		case nil, event.EndDocument:
			return nil, p.endedInside(elemProperty, loc)
		default:
			return nil, p.unexpectedEvent(c, "the property close tag; property elements are empty")
		}
	}
	if end.Name != elemProperty {
		return nil, p.closedBy(elemProperty, end, c)
	}
	if err := c.advance(); err != nil {
		return nil, p.unbalanced(elemProperty, loc, err)
	}
	return prop, nil
}

// unbalanced reports a tokenizer failure that happened while the named
// element was still open. The underlying cause is preserved.
func (p *Parser) unbalanced(element string, loc ast.Location, cause error) *mslErrors.Error {
	return &mslErrors.Error{
		Type:     mslErrors.ErrorTypeUnbalancedElement,
		Message:  fmt.Sprintf("element <%s> was never closed: %v", element, cause),
		Element:  element,
		Location: loc,
		Err:      cause,
	}
}

// closedBy reports an explicit open/close name mismatch in the event stream.
func (p *Parser) closedBy(expected string, end event.EndElement, c *cursor) *mslErrors.Error {
	return &mslErrors.Error{
		Type:     mslErrors.ErrorTypeUnbalancedElement,
		Message:  fmt.Sprintf("element <%s> closed by </%s>", expected, end.Name),
		Element:  expected,
		Location: c.location(end.Line, end.Column),
	}
}

// endedInside reports a stream that ended while the named element was open.
func (p *Parser) endedInside(element string, loc ast.Location) *mslErrors.Error {
	return &mslErrors.Error{
		Type:     mslErrors.ErrorTypeUnbalancedElement,
		Message:  fmt.Sprintf("event stream ended before </%s>", element),
		Element:  element,
		Location: loc,
	}
}

// unexpectedEvent reports a lookahead kind that is invalid at the current
// grammar position.
func (p *Parser) unexpectedEvent(c *cursor, expected string) *mslErrors.Error {
	return &mslErrors.Error{
		Type:     mslErrors.ErrorTypeUnexpectedEvent,
		Message:  fmt.Sprintf("%s where %s was expected", describeEvent(c.cur), expected),
		Location: c.here(),
	}
}

func describeEvent(ev event.Event) string {
	switch v := ev.(type) {
	case event.StartDocument:
		return "document start marker"
	case event.EndDocument:
		return "document end marker"
	case event.StartElement:
		return fmt.Sprintf("start tag <%s>", v.Name)
	case event.EndElement:
		return fmt.Sprintf("close tag </%s>", v.Name)
	case event.Text:
		return "character data"
	default:
		return "end of stream"
	}
}
