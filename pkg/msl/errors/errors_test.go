package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"integon/meridian/pkg/msl/ast"
)

func TestError_Error(t *testing.T) {
	err := &Error{
		Type:       ErrorTypeUnsupportedMediator,
		Message:    `not a supported mediator: element "class"`,
		Element:    "class",
		Location:   ast.Location{File: "api.xml", Line: 4, Column: 7},
		Suggestion: "supported mediators are <log> and <property>",
	}
	got := err.Error()
	for _, want := range []string{"[unsupported-mediator]", "api.xml:4:7", "suggestion:"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("underlying tokenizer failure")
	err := &Error{Type: ErrorTypeSyntax, Message: "malformed markup", Err: cause}
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is failed to reach the wrapped cause")
	}
}

func TestError_Is_MatchesByType(t *testing.T) {
	err := fmt.Errorf("context: %w", &Error{Type: ErrorTypeUnbalancedElement, Message: "x"})
	if !stderrors.Is(err, &Error{Type: ErrorTypeUnbalancedElement}) {
		t.Error("Is did not match on error type")
	}
	if stderrors.Is(err, &Error{Type: ErrorTypeMalformedLog}) {
		t.Error("Is matched a different error type")
	}
}

func TestTypeOf(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Type: ErrorTypeMalformedLog, Message: "x"})
	if got := TypeOf(err); got != ErrorTypeMalformedLog {
		t.Errorf("TypeOf = %q, want %q", got, ErrorTypeMalformedLog)
	}
	if got := TypeOf(fmt.Errorf("plain")); got != "" {
		t.Errorf("TypeOf(plain error) = %q, want empty", got)
	}
}

func TestErrorList(t *testing.T) {
	el := NewErrorList()
	if el.ToError() != nil {
		t.Error("empty list ToError() != nil")
	}

	el.AddError(ErrorTypeValidation, "first", ast.Location{})
	el.AddError(ErrorTypeValidation, "second", ast.Location{})
	if el.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", el.Count())
	}
	if !el.HasErrors() {
		t.Error("HasErrors() = false after Add")
	}

	msg := el.Error()
	if !strings.Contains(msg, "2 error(s)") {
		t.Errorf("Error() = %q, missing count header", msg)
	}
	if !strings.Contains(msg, "first") || !strings.Contains(msg, "second") {
		t.Errorf("Error() = %q, missing entries", msg)
	}
	if el.ToError() == nil {
		t.Error("non-empty list ToError() = nil")
	}
}

func TestErrorList_UnwrapMatchesEntries(t *testing.T) {
	el := NewErrorList()
	el.AddError(ErrorTypeValidation, "empty name", ast.Location{})

	err := el.ToError()
	if !stderrors.Is(err, &Error{Type: ErrorTypeValidation}) {
		t.Error("errors.Is did not reach the list entries")
	}
	if got := TypeOf(err); got != ErrorTypeValidation {
		t.Errorf("TypeOf = %q, want %q", got, ErrorTypeValidation)
	}
}
