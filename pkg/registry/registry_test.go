package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/model"
)

type stubEvaluator struct {
	outcome model.Outcome
	calls   int
}

func (s *stubEvaluator) Evaluate() model.Outcome {
	s.calls++
	return s.outcome
}

func TestRegister_RejectsInvalidInput(t *testing.T) {
	reg := New()

	if _, err := reg.Register("  ", &stubEvaluator{}, Anchors{}); !errors.Is(err, ErrFieldIDRequired) {
		t.Fatalf("expected ErrFieldIDRequired, got %v", err)
	}
	if _, err := reg.Register("age", nil, Anchors{}); !errors.Is(err, ErrEvaluatorRequired) {
		t.Fatalf("expected ErrEvaluatorRequired, got %v", err)
	}
	if _, err := reg.Register("age", &stubEvaluator{}, Anchors{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := reg.Register("age", &stubEvaluator{}, Anchors{}); !errors.Is(err, ErrDuplicateField) {
		t.Fatalf("expected ErrDuplicateField, got %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected one entry, got %d", reg.Len())
	}
}

func TestRegister_DefaultsAnchors(t *testing.T) {
	reg := New()
	entry, err := reg.Register("hsl_age", &stubEvaluator{outcome: model.Pass()}, Anchors{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	want := Anchors{Container: "hsl_age_Container", Focus: "hsl_age"}
	if diff := cmp.Diff(want, entry.Anchors()); diff != "" {
		t.Fatalf("anchors mismatch (-want +got):\n%s", diff)
	}
}

func TestEntry_StartsValid(t *testing.T) {
	reg := New()
	entry, err := reg.Register("age", &stubEvaluator{}, Anchors{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !entry.IsValid() {
		t.Fatalf("expected new entry to be valid")
	}
	if entry.ErrorMessage() != "" {
		t.Fatalf("expected empty error message, got %q", entry.ErrorMessage())
	}
}

func TestEntry_EvaluateUpdatesStateTogether(t *testing.T) {
	stub := &stubEvaluator{outcome: model.Fail(model.RuleEmpty, "Enter age", "")}
	reg := New()
	entry, err := reg.Register("age", stub, Anchors{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if entry.Evaluate() {
		t.Fatalf("expected evaluation to fail")
	}
	want := Snapshot{
		ControlToValidate: "age",
		IsValid:           false,
		ErrorMessage:      `<a href='#age_Container' onclick="javascript:scrollToAndFocus('age_Container', 'age'); return false;">Enter age</a>`,
		LastErrorMessage:  "Enter age",
		ContainerAnchorID: "age_Container",
		FocusAnchorID:     "age",
	}
	if diff := cmp.Diff(want, entry.Snapshot()); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}

	stub.outcome = model.Pass()
	if !entry.Evaluate() {
		t.Fatalf("expected evaluation to pass")
	}
	if entry.ErrorMessage() != "" {
		t.Fatalf("expected link to clear, got %q", entry.ErrorMessage())
	}
	if entry.LastErrorMessage() != "Enter age" {
		t.Fatalf("expected last message to survive, got %q", entry.LastErrorMessage())
	}
}

func TestEntry_OutcomeFocusAnchorWins(t *testing.T) {
	stub := &stubEvaluator{outcome: model.Fail(model.RuleNothingSelected, "Select colour", "colour-red")}
	reg := New()
	entry, err := reg.Register("colour", stub, Anchors{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	entry.Evaluate()
	if got := entry.Snapshot().FocusAnchorID; got != "colour-red" {
		t.Fatalf("expected focus anchor from outcome, got %q", got)
	}
}

func TestEvaluateAll_ReportsFailuresInOrder(t *testing.T) {
	reg := New()
	first := &stubEvaluator{outcome: model.Fail(model.RuleEmpty, "Enter name", "")}
	second := &stubEvaluator{outcome: model.Pass()}
	third := &stubEvaluator{outcome: model.Fail(model.RuleTooLow, "Age must be 16 or more", "")}

	mustRegister(t, reg, "name", first)
	mustRegister(t, reg, "email", second)
	mustRegister(t, reg, "age", third)

	failures := reg.EvaluateAll()
	got := make([]string, len(failures))
	for i, failure := range failures {
		got[i] = failure.FieldID + ": " + failure.Message
	}
	want := []string{"name: Enter name", "age: Age must be 16 or more"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("failures mismatch (-want +got):\n%s", diff)
	}
	for _, stub := range []*stubEvaluator{first, second, third} {
		if stub.calls != 1 {
			t.Fatalf("expected every evaluator to run once, got %d", stub.calls)
		}
	}
}

func TestReset_DropsEntries(t *testing.T) {
	reg := New()
	mustRegister(t, reg, "name", &stubEvaluator{})
	reg.Reset()
	if reg.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", reg.Len())
	}
	if _, ok := reg.Lookup("name"); ok {
		t.Fatalf("expected lookup to miss after reset")
	}
	mustRegister(t, reg, "name", &stubEvaluator{})
}

func TestSummaryLink_SanitizesMessage(t *testing.T) {
	got := SummaryLink("x_Container", "x", `<script>alert(1)</script>Enter x`)
	want := `<a href='#x_Container' onclick="javascript:scrollToAndFocus('x_Container', 'x'); return false;">Enter x</a>`
	if got != want {
		t.Fatalf("link mismatch:\nwant %s\ngot  %s", want, got)
	}
}

func mustRegister(t *testing.T, reg *Registry, id string, ev Evaluator) {
	t.Helper()
	if _, err := reg.Register(id, ev, Anchors{}); err != nil {
		t.Fatalf("register %s: %v", id, err)
	}
}
