package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"integon/meridian/pkg/msl/ast"
)

// AsError unwraps err into an *Error using the standard library matcher.
func AsError(err error, target **Error) bool {
	return stderrors.As(err, target)
}

// ErrorType categorizes a parse or validation failure.
type ErrorType string

const (
	ErrorTypeUnsupportedMediator ErrorType = "unsupported-mediator"
	ErrorTypeMalformedLog        ErrorType = "malformed-log"
	ErrorTypeMalformedProperty   ErrorType = "malformed-property"
	ErrorTypeUnbalancedElement   ErrorType = "unbalanced-element"
	ErrorTypeUnexpectedEvent     ErrorType = "unexpected-event"
	ErrorTypeUnexpectedEOF       ErrorType = "unexpected-eof"
	ErrorTypeSyntax              ErrorType = "syntax"
	ErrorTypeIO                  ErrorType = "io"
	ErrorTypeValidation          ErrorType = "validation"
)

// Error is a single failure with enough context to report precisely:
// category, message, the element involved (when there is one), and where in
// the source it happened.
type Error struct {
	Type       ErrorType
	Message    string
	Element    string // offending or expected element name, if known
	Location   ast.Location
	Suggestion string // optional fix hint
	Err        error  // underlying cause (tokenizer or I/O error)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%s] %s", e.Type, e.Message)
	if e.Location.IsValid() {
		fmt.Fprintf(&sb, " (%s)", e.Location)
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "; suggestion: %s", e.Suggestion)
	}
	return sb.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two *Error values by Type, so callers can probe categories with
// errors.Is(err, &Error{Type: ErrorTypeUnbalancedElement}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Type == e.Type
}

// TypeOf returns the ErrorType of err if it is (or wraps) an *Error, or ""
// otherwise.
func TypeOf(err error) ErrorType {
	var e *Error
	if AsError(err, &e) {
		return e.Type
	}
	return ""
}

// ErrorList accumulates several errors from a multi-pass check such as
// validation. The parser itself never produces one: it stops at the first
// violation.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList returns an empty list.
func NewErrorList() *ErrorList {
	return &ErrorList{}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and appends an error from its parts.
func (el *ErrorList) AddError(errType ErrorType, message string, location ast.Location) {
	el.Add(&Error{Type: errType, Message: message, Location: location})
}

// HasErrors reports whether the list is non-empty.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of accumulated errors.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface, formatting every entry.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):", el.Count())
	for _, err := range el.Errors {
		sb.WriteString("\n  ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the entries to errors.Is and errors.As, so a list of one
// category still matches that category.
func (el *ErrorList) Unwrap() []error {
	errs := make([]error, len(el.Errors))
	for i, err := range el.Errors {
		errs[i] = err
	}
	return errs
}

// ToError returns nil for an empty list, the list otherwise. Callers return
// its result directly so an error-free pass yields a nil error.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
