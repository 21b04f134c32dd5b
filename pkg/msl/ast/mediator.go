package ast

import "strings"

// LogMediator emits a log entry at the given severity level. The level is an
// arbitrary string at this layer; the conventional values are checked by the
// validator package, not the parser.
type LogMediator struct {
	Level      string
	Properties []*PropertyMediator // rendered inside the log body, in order
	Location   Location
}

func (*LogMediator) node()     {}
func (*LogMediator) mediator() {}

// String renders the log mediator in canonical form. A log with no
// properties still renders an explicit open/close pair.
func (m *LogMediator) String() string {
	var sb strings.Builder
	m.appendTo(&sb)
	return sb.String()
}

func (m *LogMediator) appendTo(sb *strings.Builder) {
	sb.WriteString(`<log level="`)
	sb.WriteString(m.Level)
	sb.WriteString(`">`)
	for _, p := range m.Properties {
		p.appendTo(sb)
	}
	sb.WriteString("</log>")
}

// Property returns the first property with the given name, or nil.
func (m *LogMediator) Property(name string) *PropertyMediator {
	for _, p := range m.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// PropertyMediator attaches a named value to its enclosing log mediator.
// It is a leaf: property elements carry no children.
type PropertyMediator struct {
	Name     string
	Value    string
	Location Location
}

func (*PropertyMediator) node()     {}
func (*PropertyMediator) mediator() {}

// String renders the property in canonical (self-closing) form.
func (m *PropertyMediator) String() string {
	var sb strings.Builder
	m.appendTo(&sb)
	return sb.String()
}

func (m *PropertyMediator) appendTo(sb *strings.Builder) {
	sb.WriteString(`<property name="`)
	sb.WriteString(m.Name)
	sb.WriteString(`" value="`)
	sb.WriteString(m.Value)
	sb.WriteString(`"/>`)
}
