package ast

import "testing"

func sampleProgram() *Program {
	return &Program{
		Nodes: []Node{
			&InSequence{
				Mediators: []Mediator{
					&LogMediator{
						Level: "custom",
						Properties: []*PropertyMediator{
							{Name: "/validate", Value: "inSequence"},
						},
					},
					&LogMediator{Level: "full"},
				},
			},
		},
	}
}

func TestProgram_String(t *testing.T) {
	got := sampleProgram().String()
	want := `<inSequence>` +
		`<log level="custom"><property name="/validate" value="inSequence"/></log>` +
		`<log level="full"></log>` +
		`</inSequence>`
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogMediator_String_Empty(t *testing.T) {
	log := &LogMediator{Level: "full"}
	if got, want := log.String(), `<log level="full"></log>`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPropertyMediator_String(t *testing.T) {
	p := &PropertyMediator{Name: "a", Value: "b"}
	if got, want := p.String(), `<property name="a" value="b"/>`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestInSequence_String_Empty(t *testing.T) {
	seq := &InSequence{}
	if got, want := seq.String(), `<inSequence></inSequence>`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLogMediator_Property(t *testing.T) {
	log := &LogMediator{
		Level: "custom",
		Properties: []*PropertyMediator{
			{Name: "a", Value: "first"},
			{Name: "a", Value: "second"},
			{Name: "b", Value: "other"},
		},
	}
	if got := log.Property("a"); got == nil || got.Value != "first" {
		t.Errorf(`Property("a") = %v, want the first "a" property`, got)
	}
	if got := log.Property("missing"); got != nil {
		t.Errorf(`Property("missing") = %v, want nil`, got)
	}
}

func TestProgram_MediatorCount(t *testing.T) {
	p := &Program{
		Nodes: []Node{
			&InSequence{Mediators: []Mediator{&LogMediator{Level: "a"}, &LogMediator{Level: "b"}}},
			&LogMediator{Level: "c"},
		},
	}
	if got := p.MediatorCount(); got != 3 {
		t.Errorf("MediatorCount() = %d, want 3", got)
	}
}

func TestProgram_Equal(t *testing.T) {
	a := sampleProgram()
	b := sampleProgram()
	// Locations differ; Equal must not care.
	b.Nodes[0].(*InSequence).Location = Location{File: "other.xml", Line: 9, Column: 3}
	if !a.Equal(b) {
		t.Error("structurally identical programs compared unequal")
	}

	b.Nodes[0].(*InSequence).Mediators[1].(*LogMediator).Level = "simple"
	if a.Equal(b) {
		t.Error("programs with different levels compared equal")
	}
}

// orderVisitor records the visit order of node kinds.
type orderVisitor struct {
	order []string
}

func (v *orderVisitor) VisitProgram(*Program) error { v.order = append(v.order, "program"); return nil }
func (v *orderVisitor) VisitInSequence(*InSequence) error {
	v.order = append(v.order, "inSequence")
	return nil
}
func (v *orderVisitor) VisitLog(l *LogMediator) error {
	v.order = append(v.order, "log:"+l.Level)
	return nil
}
func (v *orderVisitor) VisitProperty(p *PropertyMediator) error {
	v.order = append(v.order, "property:"+p.Name)
	return nil
}

func TestWalk_Order(t *testing.T) {
	v := &orderVisitor{}
	if err := Walk(sampleProgram(), v); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	want := []string{"program", "inSequence", "log:custom", "property:/validate", "log:full"}
	if len(v.order) != len(want) {
		t.Fatalf("visited %v, want %v", v.order, want)
	}
	for i := range want {
		if v.order[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, v.order[i], want[i])
		}
	}
}
