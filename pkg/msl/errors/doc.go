// Package errors defines the error taxonomy for MSL parsing and validation.
//
// Every parse failure is an *Error carrying a category (ErrorType), the
// offending element name where one exists, a source location, and an
// optional suggestion. The parser aborts on the first grammar violation and
// surfaces exactly one *Error; the validator accumulates several into an
// *ErrorList.
//
// Categories map one-to-one onto the grammar's failure modes:
//
//   - ErrorTypeUnsupportedMediator: an element where a mediator was expected,
//     but its name is outside the supported set
//   - ErrorTypeMalformedLog: a log element without its required level attribute
//   - ErrorTypeMalformedProperty: a property missing name/value, in strict
//     attribute mode only
//   - ErrorTypeUnbalancedElement: a close tag that does not match the open
//     element, or a stream ending inside one
//   - ErrorTypeUnexpectedEvent: an event kind invalid at the current grammar
//     position
//   - ErrorTypeUnexpectedEOF: events exhausted before the document end marker
//   - ErrorTypeSyntax: the tokenizer rejected the raw markup
//   - ErrorTypeIO: the byte source could not be read
package errors
