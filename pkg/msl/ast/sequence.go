package ast

import "strings"

// InSequence is the inbound pipeline stage: an ordered container of
// mediators. Empty sequences are valid.
type InSequence struct {
	Mediators []Mediator
	Location  Location
}

func (*InSequence) node() {}

// String renders the sequence in canonical form.
func (s *InSequence) String() string {
	var sb strings.Builder
	s.appendTo(&sb)
	return sb.String()
}

func (s *InSequence) appendTo(sb *strings.Builder) {
	sb.WriteString("<inSequence>")
	for _, m := range s.Mediators {
		m.appendTo(sb)
	}
	sb.WriteString("</inSequence>")
}
