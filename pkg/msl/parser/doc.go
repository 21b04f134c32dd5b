// Package parser implements the single-lookahead recursive-descent parser
// for the Mediation Sequence Language.
//
// The parser is a stateful cursor over a structural event stream
// (event.Reader). It holds exactly one buffered lookahead event; every
// production inspects the lookahead, consumes precisely the events it
// expects, and advances past them. There is no backtracking — the grammar is
// unambiguous with one token of lookahead.
//
// Recognizers are total over the grammar: every call returns either a fully
// built node or the first grammar violation as an *errors.Error. There is no
// recovery and no partial tree; the violation aborts the whole parse.
//
// # Grammar
//
//	program    := StartDocument? node* EndDocument
//	node       := inSequence | mediator          (bare mediators: see options)
//	inSequence := <inSequence> mediator* </inSequence>
//	mediator   := log | property
//	log        := <log level="..."> property* </log>
//	property   := <property name="..." value="..."/>
//
// # Options
//
// Two policies are configurable, both defaulting to the historically lenient
// behavior:
//
// WithRequireSequence rejects bare mediators at the top level, restricting
// the document to inSequence blocks.
//
// WithStrictAttributes turns missing property name/value attributes into
// errors instead of defaulting them to the empty string. A log's level
// attribute is always required.
package parser
