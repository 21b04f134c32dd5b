package validator

import (
	"fmt"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
)

// knownLevels are the log severity levels the mediation language
// conventionally uses. The parser accepts any string; levels outside this
// set are flagged only in strict mode.
var knownLevels = map[string]bool{
	"simple":  true,
	"headers": true,
	"full":    true,
	"custom":  true,
}

// Validator runs lint checks over a parsed program.
type Validator struct {
	strict bool
}

// NewValidator creates a validator with advisory checks disabled.
func NewValidator() *Validator {
	return &Validator{}
}

// WithStrictMode promotes advisory findings (duplicate property names,
// unconventional log levels) to errors.
func (v *Validator) WithStrictMode(strict bool) *Validator {
	v.strict = strict
	return v
}

// Validate checks the program and returns an *errors.ErrorList with every
// finding, or nil when the program is clean.
func (v *Validator) Validate(program *ast.Program) error {
	errs := mslErrors.NewErrorList()
	walker := &lintVisitor{strict: v.strict, errs: errs}
	// lintVisitor never aborts the walk; findings accumulate.
	_ = ast.Walk(program, walker)
	return errs.ToError()
}

// lintVisitor accumulates findings across the tree.
type lintVisitor struct {
	strict bool
	errs   *mslErrors.ErrorList
}

func (l *lintVisitor) VisitProgram(*ast.Program) error       { return nil }
func (l *lintVisitor) VisitInSequence(*ast.InSequence) error { return nil }

func (l *lintVisitor) VisitLog(log *ast.LogMediator) error {
	if l.strict && !knownLevels[log.Level] {
		l.errs.Add(&mslErrors.Error{
			Type:       mslErrors.ErrorTypeValidation,
			Message:    fmt.Sprintf("log level %q is not a conventional level", log.Level),
			Element:    "log",
			Location:   log.Location,
			Suggestion: "conventional levels are simple, headers, full, custom",
		})
	}

	seen := make(map[string]bool, len(log.Properties))
	for _, p := range log.Properties {
		if !seen[p.Name] {
			seen[p.Name] = true
			continue
		}
		if l.strict {
			l.errs.Add(&mslErrors.Error{
				Type:     mslErrors.ErrorTypeValidation,
				Message:  fmt.Sprintf("duplicate property %q in log body", p.Name),
				Element:  "property",
				Location: p.Location,
			})
		}
	}
	return nil
}

func (l *lintVisitor) VisitProperty(p *ast.PropertyMediator) error {
	if p.Name == "" {
		l.errs.Add(&mslErrors.Error{
			Type:       mslErrors.ErrorTypeValidation,
			Message:    "property mediator has an empty name",
			Element:    "property",
			Location:   p.Location,
			Suggestion: `set name="..." on the property element`,
		})
	}
	return nil
}
