package ast

import "strings"

// Program is the root of a parsed document: the top-level nodes in document
// order. It is immutable once the parser returns it.
type Program struct {
	Nodes []Node
}

// Node is one top-level construct: an InSequence block or a bare Mediator.
// The interface is sealed; InSequence, LogMediator, and PropertyMediator are
// the only implementations.
type Node interface {
	node()
	appendTo(sb *strings.Builder)
}

// Mediator is a single pipeline step. The interface is sealed; LogMediator
// and PropertyMediator are the only implementations.
type Mediator interface {
	Node
	mediator()
}

// String renders the program in canonical form, each node concatenated in
// document order with no separators.
func (p *Program) String() string {
	var sb strings.Builder
	for _, n := range p.Nodes {
		n.appendTo(&sb)
	}
	return sb.String()
}

// Sequences returns the top-level InSequence nodes in document order.
func (p *Program) Sequences() []*InSequence {
	var seqs []*InSequence
	for _, n := range p.Nodes {
		if seq, ok := n.(*InSequence); ok {
			seqs = append(seqs, seq)
		}
	}
	return seqs
}

// MediatorCount returns the total number of mediators in the program,
// counting both bare top-level mediators and those nested in sequences.
// Properties inside a log body are not counted separately.
func (p *Program) MediatorCount() int {
	count := 0
	for _, n := range p.Nodes {
		switch v := n.(type) {
		case *InSequence:
			count += len(v.Mediators)
		case Mediator:
			count++
		}
	}
	return count
}
