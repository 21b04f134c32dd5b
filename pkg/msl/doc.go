// Package msl provides parsing, validation, and canonical rendering for the
// Mediation Sequence Language (MSL).
//
// MSL is a restricted dialect of an XML-based mediation-pipeline
// configuration language: a named sequence block containing ordered pipeline
// steps ("mediators"). The supported vocabulary is intentionally small — a
// sequence container, a logging step with a severity level, and key/value
// properties attached to a logging step.
//
// # Architecture
//
// The package is organized into subpackages:
//
//   - ast: syntax tree definitions and canonical rendering
//   - event: the structural event boundary over the markup tokenizer
//   - parser: the single-lookahead recursive-descent grammar recognizer
//   - errors: the parse/validation error taxonomy
//   - validator: lint checks over parsed programs
//
// # Basic usage
//
// Parse a sequence configuration file and render it back:
//
//	program, err := msl.ParseFile("sequences/inbound.xml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(program.String())
//
// Data flows one way: text, to events, to AST, and (optionally) back to
// text. Parsing is synchronous and deterministic; the returned Program is
// immutable and safe to hand to any single consumer.
package msl
