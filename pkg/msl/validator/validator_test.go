package validator

import (
	"strings"
	"testing"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/parser"
)

func parse(t *testing.T, input string) *ast.Program {
	t.Helper()
	program, err := parser.NewParser().Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	return program
}

func TestValidator_CleanProgram(t *testing.T) {
	program := parse(t, `<inSequence><log level="full"><property name="a" value="b"/></log></inSequence>`)
	if err := NewValidator().WithStrictMode(true).Validate(program); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidator_EmptyPropertyName(t *testing.T) {
	program := parse(t, `<log level="full"><property value="b"/></log>`)
	err := NewValidator().Validate(program)
	if err == nil {
		t.Fatal("Validate() = nil, want empty-name finding")
	}
	el, ok := err.(*mslErrors.ErrorList)
	if !ok {
		t.Fatalf("error is %T, want *errors.ErrorList", err)
	}
	if el.Count() != 1 {
		t.Errorf("Count() = %d, want 1", el.Count())
	}
	if !strings.Contains(el.Error(), "empty name") {
		t.Errorf("Error() = %q, missing empty-name message", el.Error())
	}
}

func TestValidator_UnknownLevel_StrictOnly(t *testing.T) {
	program := parse(t, `<log level="loud"/>`)

	if err := NewValidator().Validate(program); err != nil {
		t.Errorf("non-strict Validate() = %v, want nil", err)
	}
	if err := NewValidator().WithStrictMode(true).Validate(program); err == nil {
		t.Error("strict Validate() = nil, want unconventional-level finding")
	}
}

func TestValidator_DuplicateProperties_StrictOnly(t *testing.T) {
	program := parse(t, `<log level="custom"><property name="a" value="1"/><property name="a" value="2"/></log>`)

	if err := NewValidator().Validate(program); err != nil {
		t.Errorf("non-strict Validate() = %v, want nil", err)
	}

	err := NewValidator().WithStrictMode(true).Validate(program)
	if err == nil {
		t.Fatal("strict Validate() = nil, want duplicate finding")
	}
	if !strings.Contains(err.Error(), "duplicate property") {
		t.Errorf("Error() = %q, missing duplicate message", err.Error())
	}
}

func TestValidator_AccumulatesFindings(t *testing.T) {
	program := parse(t, `<inSequence>`+
		`<log level="loud"><property value="no-name"/></log>`+
		`<log level="custom"><property name="a" value="1"/><property name="a" value="2"/></log>`+
		`</inSequence>`)

	err := NewValidator().WithStrictMode(true).Validate(program)
	if err == nil {
		t.Fatal("Validate() = nil, want findings")
	}
	el := err.(*mslErrors.ErrorList)
	if el.Count() != 3 {
		t.Errorf("Count() = %d, want 3 (level, empty name, duplicate): %v", el.Count(), el)
	}
}
