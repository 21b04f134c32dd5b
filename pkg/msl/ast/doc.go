// Package ast defines the syntax tree for the Mediation Sequence Language
// (MSL) and its canonical textual rendering.
//
// The tree is a pair of closed sums, mirroring the grammar's nonterminals:
//
// Node: either an InSequence block or a bare Mediator at the top level
//
// Mediator: either a LogMediator or a PropertyMediator
//
// Both sums are sealed interfaces; variants can only be added in this
// package, so a type switch over Node or Mediator can be checked for
// exhaustiveness at every consumption site.
//
// # Ownership and immutability
//
// A Program owns all of its descendants. Every node has exactly one parent
// container and trees are built once by the parser and never mutated
// afterward. Validators and renderers only read.
//
// # Canonical rendering
//
// Every node renders to a fixed textual form through String:
//
//	<inSequence><log level="custom"><property name="a" value="b"/></log></inSequence>
//
// Attribute values are substituted literally; callers must ensure values
// contain no markup-special characters ('"', '<', '&'). Rendering a parsed
// Program and re-parsing the result yields a structurally equal tree for any
// input within that constraint.
package ast
