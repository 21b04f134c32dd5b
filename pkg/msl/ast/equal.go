package ast

// Equal reports structural equality of two programs, ignoring source
// locations. This is the equality the round-trip law is stated in: a program
// rendered and re-parsed compares Equal to the original even though the
// re-parse assigns fresh positions.
func (p *Program) Equal(o *Program) bool {
	if p == nil || o == nil {
		return p == o
	}
	if len(p.Nodes) != len(o.Nodes) {
		return false
	}
	for i := range p.Nodes {
		if !nodeEqual(p.Nodes[i], o.Nodes[i]) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch av := a.(type) {
	case *InSequence:
		bv, ok := b.(*InSequence)
		if !ok || len(av.Mediators) != len(bv.Mediators) {
			return false
		}
		for i := range av.Mediators {
			if !nodeEqual(av.Mediators[i], bv.Mediators[i]) {
				return false
			}
		}
		return true
	case *LogMediator:
		bv, ok := b.(*LogMediator)
		if !ok || av.Level != bv.Level || len(av.Properties) != len(bv.Properties) {
			return false
		}
		for i := range av.Properties {
			if !nodeEqual(av.Properties[i], bv.Properties[i]) {
				return false
			}
		}
		return true
	case *PropertyMediator:
		bv, ok := b.(*PropertyMediator)
		return ok && av.Name == bv.Name && av.Value == bv.Value
	}
	return false
}
