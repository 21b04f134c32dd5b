// Package event defines the structural event boundary between the markup
// tokenizer and the MSL parser.
//
// The parser never touches raw bytes. It consumes an ordered stream of
// structural events (document boundaries, element open/close tags with their
// attributes) through the Reader interface. Two Reader implementations are
// provided:
//
// NewXMLReader: adapts the standard library XML decoder, dropping
// whitespace, comments, and processing instructions so the parser sees a
// normalized stream.
//
// NewSliceReader: replays an in-memory event list, which is the natural
// collaborator shape for tests and for embedders that produce events
// themselves.
//
// Attribute order within a start element is preserved but carries no
// meaning; element order is significant.
package event
