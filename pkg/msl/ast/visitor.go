package ast

// Visitor receives each node during a Walk. Implement it to run analysis or
// validation passes over a parsed program without re-implementing traversal.
type Visitor interface {
	VisitProgram(*Program) error
	VisitInSequence(*InSequence) error
	VisitLog(*LogMediator) error
	VisitProperty(*PropertyMediator) error
}

// Walk traverses the program in document order, calling the visitor for
// every node. Traversal stops at the first error, which is returned.
func Walk(program *Program, visitor Visitor) error {
	if err := visitor.VisitProgram(program); err != nil {
		return err
	}
	for _, n := range program.Nodes {
		if err := walkNode(n, visitor); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n Node, visitor Visitor) error {
	switch v := n.(type) {
	case *InSequence:
		if err := visitor.VisitInSequence(v); err != nil {
			return err
		}
		for _, m := range v.Mediators {
			if err := walkNode(m, visitor); err != nil {
				return err
			}
		}
	case *LogMediator:
		if err := visitor.VisitLog(v); err != nil {
			return err
		}
		for _, p := range v.Properties {
			if err := visitor.VisitProperty(p); err != nil {
				return err
			}
		}
	case *PropertyMediator:
		return visitor.VisitProperty(v)
	}
	return nil
}
