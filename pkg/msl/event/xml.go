package event

import (
	"encoding/xml"
	"io"
	"strings"
)

// xmlReader adapts encoding/xml's token stream to structural events.
// The decoder enforces well-formedness (matching open/close tags, single
// root rules relaxed), so any tag mismatch surfaces here as a decoder error
// rather than as an event.
type xmlReader struct {
	dec  *xml.Decoder
	done bool // EndDocument already emitted
}

// NewXMLReader returns a Reader producing structural events from raw markup.
// Whitespace-only character data, comments, directives, and processing
// instructions other than the XML declaration are dropped. A declaration,
// when present, is surfaced as StartDocument; end of input is surfaced as a
// single EndDocument followed by io.EOF.
func NewXMLReader(r io.Reader) Reader {
	return &xmlReader{dec: xml.NewDecoder(r)}
}

func (x *xmlReader) Event() (Event, error) {
	if x.done {
		return nil, io.EOF
	}
	for {
		tok, err := x.dec.Token()
		if err == io.EOF {
			x.done = true
			return EndDocument{}, nil
		}
		if err != nil {
			return nil, err
		}

		line, col := x.dec.InputPos()
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				// xmlns declarations are namespace plumbing, not data.
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			return StartElement{Name: t.Name.Local, Attr: attrs, Line: line, Column: col}, nil

		case xml.EndElement:
			return EndElement{Name: t.Name.Local, Line: line, Column: col}, nil

		case xml.CharData:
			text := strings.TrimSpace(string(t))
			if text == "" {
				continue
			}
			return Text{Value: text, Line: line, Column: col}, nil

		case xml.ProcInst:
			if t.Target == "xml" {
				return declarationEvent(string(t.Inst)), nil
			}
			// Other processing instructions carry nothing the grammar uses.

		case xml.Comment, xml.Directive:
			// Skipped: structurally inert.
		}
	}
}

// declarationEvent extracts version and encoding pseudo-attributes from the
// body of an <?xml ...?> declaration.
func declarationEvent(inst string) StartDocument {
	return StartDocument{
		Version:  pseudoAttr(inst, "version"),
		Encoding: pseudoAttr(inst, "encoding"),
	}
}

// pseudoAttr scans `name="value"` or `name='value'` inside a declaration
// body. Declarations are tiny; a linear scan is enough.
func pseudoAttr(inst, name string) string {
	for {
		i := strings.Index(inst, name)
		if i < 0 {
			return ""
		}
		rest := strings.TrimLeft(inst[i+len(name):], " \t")
		if !strings.HasPrefix(rest, "=") {
			inst = inst[i+len(name):]
			continue
		}
		rest = strings.TrimLeft(rest[1:], " \t")
		if len(rest) < 2 || (rest[0] != '"' && rest[0] != '\'') {
			return ""
		}
		quote := rest[0]
		end := strings.IndexByte(rest[1:], quote)
		if end < 0 {
			return ""
		}
		return rest[1 : 1+end]
	}
}

// sliceReader replays a fixed event list.
type sliceReader struct {
	events []Event
	next   int
}

// NewSliceReader returns a Reader that replays the given events in order and
// then reports io.EOF. It is the in-memory collaborator used by tests and by
// callers that build event streams themselves.
func NewSliceReader(events []Event) Reader {
	return &sliceReader{events: events}
}

func (s *sliceReader) Event() (Event, error) {
	if s.next >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}
