package event

// Event is a single structural signal produced by a tokenizer.
// The set of implementations is closed: StartDocument, EndDocument,
// StartElement, EndElement, and Text.
type Event interface {
	event()
}

// Attr is a single name/value attribute pair on a start element.
type Attr struct {
	Name  string
	Value string
}

// StartDocument marks the beginning of a document. It is optional: a stream
// may begin directly with content.
type StartDocument struct {
	Version  string // e.g. "1.0"
	Encoding string // e.g. "UTF-8"
}

// EndDocument marks the end of a document. A well-formed stream emits it
// exactly once, after all elements have been closed.
type EndDocument struct{}

// StartElement is the opening tag of an element.
type StartElement struct {
	Name string // local name, namespace prefixes stripped
	Attr []Attr // attributes in source order

	Line   int
	Column int
}

// EndElement is the closing tag of an element.
type EndElement struct {
	Name string

	Line   int
	Column int
}

// Text is non-whitespace character data. The supported grammar has no text
// content, so the parser rejects it wherever it appears; it exists so the
// tokenizer never has to silently swallow meaningful input.
type Text struct {
	Value string

	Line   int
	Column int
}

func (StartDocument) event() {}
func (EndDocument) event()   {}
func (StartElement) event()  {}
func (EndElement) event()    {}
func (Text) event()          {}

// Reader yields structural events one at a time. Event returns io.EOF after
// the final event has been consumed. Implementations are not required to be
// safe for concurrent use.
type Reader interface {
	Event() (Event, error)
}

// Attribute returns the value of the first attribute with the given name,
// scanning in source order, and whether it was present.
func (e StartElement) Attribute(name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}
