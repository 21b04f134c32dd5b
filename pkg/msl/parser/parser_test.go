package parser

import (
	"strings"
	"testing"

	"integon/meridian/pkg/msl/ast"
	mslErrors "integon/meridian/pkg/msl/errors"
	"integon/meridian/pkg/msl/event"
)

func parseString(t *testing.T, input string) (*ast.Program, error) {
	t.Helper()
	return NewParser().Parse(strings.NewReader(input))
}

func wantErrorType(t *testing.T, err error, want mslErrors.ErrorType) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := mslErrors.TypeOf(err); got != want {
		t.Fatalf("error type = %q, want %q (error: %v)", got, want, err)
	}
}

func TestParser_Parse_InSequence(t *testing.T) {
	input := `
	<inSequence>
		<log level="custom">
			<property name="/validate" value="inSequence" />
		</log>
		<log level="full" />
	</inSequence>`

	program, err := parseString(t, input)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(program.Nodes) != 1 {
		t.Fatalf("len(Nodes) = %d, want 1", len(program.Nodes))
	}

	seq, ok := program.Nodes[0].(*ast.InSequence)
	if !ok {
		t.Fatalf("Nodes[0] is %T, want *ast.InSequence", program.Nodes[0])
	}
	if len(seq.Mediators) != 2 {
		t.Fatalf("len(Mediators) = %d, want 2", len(seq.Mediators))
	}

	log, ok := seq.Mediators[0].(*ast.LogMediator)
	if !ok {
		t.Fatalf("Mediators[0] is %T, want *ast.LogMediator", seq.Mediators[0])
	}
	if log.Level != "custom" {
		t.Errorf("Level = %q, want %q", log.Level, "custom")
	}
	if len(log.Properties) != 1 {
		t.Fatalf("len(Properties) = %d, want 1", len(log.Properties))
	}
	if got := log.Properties[0].Name; got != "/validate" {
		t.Errorf("Property name = %q, want %q", got, "/validate")
	}
	if got := log.Properties[0].Value; got != "inSequence" {
		t.Errorf("Property value = %q, want %q", got, "inSequence")
	}
}

func TestParser_Parse_OrderPreserved(t *testing.T) {
	program, err := parseString(t, `<inSequence><log level="a"/><log level="b"/></inSequence>`)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	seq := program.Nodes[0].(*ast.InSequence)
	want := []string{"a", "b"}
	if len(seq.Mediators) != len(want) {
		t.Fatalf("len(Mediators) = %d, want %d", len(seq.Mediators), len(want))
	}
	for i, level := range want {
		log := seq.Mediators[i].(*ast.LogMediator)
		if log.Level != level {
			t.Errorf("Mediators[%d].Level = %q, want %q", i, log.Level, level)
		}
	}
}

func TestParser_Parse_EmptyLog(t *testing.T) {
	program, err := parseString(t, `<log level="full"/>`)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	log, ok := program.Nodes[0].(*ast.LogMediator)
	if !ok {
		t.Fatalf("Nodes[0] is %T, want *ast.LogMediator", program.Nodes[0])
	}
	if log.Level != "full" {
		t.Errorf("Level = %q, want %q", log.Level, "full")
	}
	if len(log.Properties) != 0 {
		t.Errorf("len(Properties) = %d, want 0", len(log.Properties))
	}
}

func TestParser_Parse_MultipleTopLevelMediators(t *testing.T) {
	input := `
	<log level="one"><property name="p1" value="v1"/></log>
	<log level="two"/>
	<log level="three"><property name="p3" value="v3"/></log>`

	program, err := parseString(t, input)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(program.Nodes) != 3 {
		t.Fatalf("len(Nodes) = %d, want 3", len(program.Nodes))
	}

	levels := []string{"one", "two", "three"}
	propCounts := []int{1, 0, 1}
	for i := range levels {
		log, ok := program.Nodes[i].(*ast.LogMediator)
		if !ok {
			t.Fatalf("Nodes[%d] is %T, want *ast.LogMediator", i, program.Nodes[i])
		}
		if log.Level != levels[i] {
			t.Errorf("Nodes[%d].Level = %q, want %q", i, log.Level, levels[i])
		}
		if len(log.Properties) != propCounts[i] {
			t.Errorf("Nodes[%d] has %d properties, want %d", i, len(log.Properties), propCounts[i])
		}
	}
}

func TestParser_Parse_Declaration(t *testing.T) {
	input := `<?xml version="1.0" encoding="UTF-8"?><inSequence/>`
	program, err := parseString(t, input)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	seq := program.Nodes[0].(*ast.InSequence)
	if len(seq.Mediators) != 0 {
		t.Errorf("len(Mediators) = %d, want 0", len(seq.Mediators))
	}
}

func TestParser_Parse_UnsupportedMediator(t *testing.T) {
	_, err := parseString(t, `<inSequence><class name="x"/></inSequence>`)
	wantErrorType(t, err, mslErrors.ErrorTypeUnsupportedMediator)

	var pe *mslErrors.Error
	if !mslErrors.AsError(err, &pe) {
		t.Fatalf("error is %T, want *errors.Error", err)
	}
	if pe.Element != "class" {
		t.Errorf("Element = %q, want %q", pe.Element, "class")
	}
}

func TestParser_Parse_MismatchedClose(t *testing.T) {
	_, err := parseString(t, `<inSequence><log level="x"></inSequence>`)
	wantErrorType(t, err, mslErrors.ErrorTypeUnbalancedElement)
}

func TestParser_Parse_MissingLevel(t *testing.T) {
	_, err := parseString(t, `<inSequence><log></log></inSequence>`)
	wantErrorType(t, err, mslErrors.ErrorTypeMalformedLog)
}

func TestParser_Parse_NestedLogRejected(t *testing.T) {
	_, err := parseString(t, `<log level="a"><log level="b"/></log>`)
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEvent)
}

func TestParser_Parse_TextRejected(t *testing.T) {
	_, err := parseString(t, `<inSequence><log level="x">hello</log></inSequence>`)
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEvent)
}

func TestParser_Parse_PropertyWithContent(t *testing.T) {
	_, err := parseString(t, `<log level="x"><property name="a" value="b"><oops/></property></log>`)
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEvent)
}

func TestParser_Parse_LenientPropertyAttributes(t *testing.T) {
	program, err := parseString(t, `<log level="custom"><property value="only"/></log>`)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	log := program.Nodes[0].(*ast.LogMediator)
	if got := log.Properties[0].Name; got != "" {
		t.Errorf("Name = %q, want empty string", got)
	}
	if got := log.Properties[0].Value; got != "only" {
		t.Errorf("Value = %q, want %q", got, "only")
	}
}

func TestParser_Parse_StrictAttributes(t *testing.T) {
	p := NewParser().WithStrictAttributes(true)
	_, err := p.Parse(strings.NewReader(`<log level="custom"><property value="only"/></log>`))
	wantErrorType(t, err, mslErrors.ErrorTypeMalformedProperty)
}

func TestParser_Parse_RequireSequence(t *testing.T) {
	p := NewParser().WithRequireSequence(true)
	_, err := p.Parse(strings.NewReader(`<log level="full"/>`))
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEvent)

	// inSequence blocks remain legal.
	program, err := NewParser().WithRequireSequence(true).
		Parse(strings.NewReader(`<inSequence><log level="full"/></inSequence>`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(program.Nodes) != 1 {
		t.Errorf("len(Nodes) = %d, want 1", len(program.Nodes))
	}
}

func TestParser_ParseEvents_MismatchedCloseEvent(t *testing.T) {
	// An event stream (not the stdlib tokenizer, which would reject this
	// itself) closing log with the wrong name.
	events := event.NewSliceReader([]event.Event{
		event.StartElement{Name: "inSequence"},
		event.StartElement{Name: "log", Attr: []event.Attr{{Name: "level", Value: "x"}}},
		event.EndElement{Name: "inSequence"},
		event.EndDocument{},
	})
	_, err := NewParser().ParseEvents(events)
	wantErrorType(t, err, mslErrors.ErrorTypeUnbalancedElement)
}

func TestParser_ParseEvents_TruncatedInsideElement(t *testing.T) {
	events := event.NewSliceReader([]event.Event{
		event.StartElement{Name: "inSequence"},
	})
	_, err := NewParser().ParseEvents(events)
	wantErrorType(t, err, mslErrors.ErrorTypeUnbalancedElement)
}

func TestParser_ParseEvents_MissingEndDocument(t *testing.T) {
	events := event.NewSliceReader([]event.Event{
		event.StartElement{Name: "log", Attr: []event.Attr{{Name: "level", Value: "x"}}},
		event.EndElement{Name: "log"},
	})
	_, err := NewParser().ParseEvents(events)
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEOF)
}

func TestParser_ParseEvents_EmptyStream(t *testing.T) {
	_, err := NewParser().ParseEvents(event.NewSliceReader(nil))
	wantErrorType(t, err, mslErrors.ErrorTypeUnexpectedEOF)
}

func TestParser_Parse_SourceNameInLocations(t *testing.T) {
	p := NewParser().WithSourceName("inbound.xml")
	program, err := p.Parse(strings.NewReader(`<inSequence><log level="full"/></inSequence>`))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	seq := program.Nodes[0].(*ast.InSequence)
	if seq.Location.File != "inbound.xml" {
		t.Errorf("Location.File = %q, want %q", seq.Location.File, "inbound.xml")
	}
	if !seq.Location.IsValid() {
		t.Errorf("Location = %v, want valid line information", seq.Location)
	}
}
