package orchestrator_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/render"
)

func newOrchestrator(t *testing.T, options ...orchestrator.Option) *orchestrator.Orchestrator {
	t.Helper()
	options = append([]orchestrator.Option{orchestrator.WithOptionsFS(os.DirFS("testdata/options"))}, options...)
	gen := orchestrator.New(options...)
	if err := gen.Err(); err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	return gen
}

func TestOrchestrator_RenderWithValidation(t *testing.T) {
	gen := newOrchestrator(t)

	out, err := gen.Render(context.Background(), orchestrator.Request{
		FieldID:  "hsl_cost",
		Value:    "12.5",
		Validate: true,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	for _, fragment := range []string{
		`id="hsl_cost_Container"`,
		`govuk-form-group--error`,
		`Cost must be a whole number and not include pence, like 123 or 156`,
		`value="12.5"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, html)
		}
	}
}

func TestOrchestrator_RenderWithoutValidationHasNoError(t *testing.T) {
	gen := newOrchestrator(t)
	out, err := gen.Render(context.Background(), orchestrator.Request{FieldID: "hsl_cost", Value: "12.5"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "govuk-error-message") {
		t.Fatalf("expected no error before validation\n%s", out)
	}
}

func TestOrchestrator_RenderJSON(t *testing.T) {
	gen := newOrchestrator(t)
	out, err := gen.Render(context.Background(), orchestrator.Request{
		FieldID:  "hsl_contactMethod",
		Renderer: "json",
		Value:    "phone",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var params render.Params
	if err := json.Unmarshal(out, &params); err != nil {
		t.Fatalf("decode params: %v", err)
	}
	if params.Kind != render.KindRadios || len(params.Items) != 2 {
		t.Fatalf("unexpected params %+v", params)
	}
	if params.Items[0].Checked || !params.Items[1].Checked {
		t.Fatalf("expected phone checked, got %+v", params.Items)
	}
}

func TestOrchestrator_RenderErrors(t *testing.T) {
	gen := newOrchestrator(t)
	ctx := context.Background()

	if _, err := gen.Render(ctx, orchestrator.Request{FieldID: "missing"}); !errors.Is(err, orchestrator.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
	if _, err := gen.Render(ctx, orchestrator.Request{FieldID: "hsl_cost", Renderer: "pdf"}); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, err := gen.Render(ctx, orchestrator.Request{}); err == nil {
		t.Fatalf("expected error for missing field id")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := gen.Render(cancelled, orchestrator.Request{FieldID: "hsl_cost"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOrchestrator_Validate(t *testing.T) {
	gen := newOrchestrator(t)
	ctx := context.Background()

	outcome, err := gen.Validate(ctx, "hsl_fullName", "J0hn")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	want := model.Outcome{
		FailedRule:    model.RuleDisallowedChars,
		Message:       "Full name must only include letters a to z, hyphens, spaces and apostrophes",
		FocusAnchorID: "hsl_fullName",
	}
	if diff := cmp.Diff(want, outcome); diff != "" {
		t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
	}

	outcome, err = gen.Validate(ctx, "hsl_contactMethod", "")
	if err != nil {
		t.Fatalf("validate radios: %v", err)
	}
	if outcome.FailedRule != model.RuleNothingSelected || outcome.Message != "Select contact method" {
		t.Fatalf("unexpected radios outcome %+v", outcome)
	}

	if _, err := gen.Validate(ctx, "hsl_contactMethod", "fax"); err == nil {
		t.Fatalf("expected error for unknown item")
	}
}

func TestOrchestrator_PageSubmit(t *testing.T) {
	gen := newOrchestrator(t)
	var committed []string
	page, err := gen.NewPage(context.Background(), nil, map[string]string{"hsl_cost": "12.5"}, func(id, value string) {
		committed = append(committed, id+"="+value)
	})
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	if diff := cmp.Diff([]string{"hsl_contactMethod", "hsl_cost", "hsl_fullName"}, page.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	messages := func(failures []registry.Failure) []string {
		out := make([]string, 0, len(failures))
		for _, f := range failures {
			out = append(out, f.Message)
		}
		return out
	}

	want := []string{
		"Select contact method",
		"Cost must be a whole number and not include pence, like 123 or 156",
		"Enter full name",
	}
	if diff := cmp.Diff(want, messages(page.Submit())); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	for id, value := range map[string]string{"hsl_contactMethod": "email", "hsl_cost": "12", "hsl_fullName": "Jo"} {
		if err := page.Change(id, value); err != nil {
			t.Fatalf("change %s: %v", id, err)
		}
	}
	if failures := page.Submit(); len(failures) != 0 {
		t.Fatalf("expected clean submit, got %v", messages(failures))
	}
	if len(committed) != 3 {
		t.Fatalf("expected three committed values, got %v", committed)
	}
	if err := page.Change("missing", "x"); !errors.Is(err, orchestrator.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestOrchestrator_PageSeedDoesNotNotify(t *testing.T) {
	gen := newOrchestrator(t)
	var committed []string
	notify := func(id, value string) {
		committed = append(committed, id+"="+value)
	}
	values := map[string]string{"hsl_contactMethod": "email", "hsl_cost": "12", "hsl_fullName": "Jo"}

	page, err := gen.NewPage(context.Background(), nil, values, notify)
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	if len(committed) != 0 {
		t.Fatalf("expected no notifications while seeding, got %v", committed)
	}
	if failures := page.Submit(); len(failures) != 0 {
		t.Fatalf("expected seeded page to be valid, got %d failures", len(failures))
	}

	if err := page.Change("hsl_contactMethod", "phone"); err != nil {
		t.Fatalf("change: %v", err)
	}
	if diff := cmp.Diff([]string{"hsl_contactMethod=phone"}, committed); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}

	_, err = gen.NewPage(context.Background(), nil, map[string]string{"hsl_contactMethod": "fax"}, notify)
	if !errors.Is(err, field.ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem for an unknown seeded item, got %v", err)
	}
}

func TestOrchestrator_JSONPresetTransformer(t *testing.T) {
	preset, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS("testdata"), "preset.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}
	gen := newOrchestrator(t, orchestrator.WithTransformer(preset))

	outcome, err := gen.Validate(context.Background(), "hsl_cost", "123")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if outcome.Message != "Price must be 2 characters or fewer" {
		t.Fatalf("expected preset to relabel and narrow the field, got %+v", outcome)
	}

	f, err := gen.Field(context.Background(), "hsl_cost")
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if f.Prefix != "£" || f.Heading != "What did it cost?" {
		t.Fatalf("expected untouched options to survive, got %+v", f.Options)
	}
}

func TestNewJSONPresetTransformer_RejectsIdentifierChange(t *testing.T) {
	_, err := orchestrator.NewJSONPresetTransformer([]byte(`{"fields":{"a":{"uniqueIdentifier":"b"}}}`))
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, err := orchestrator.NewJSONPresetTransformer(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestOrchestrator_TransformerFunc(t *testing.T) {
	relabel := orchestrator.TransformerFunc(func(_ context.Context, f *fieldschema.Field) error {
		f.FieldIdentifier = "Your name"
		return nil
	})
	gen := newOrchestrator(t, orchestrator.WithTransformer(relabel))
	outcome, err := gen.Validate(context.Background(), "hsl_fullName", "")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if outcome.Message != "Enter your name" {
		t.Fatalf("unexpected message %q", outcome.Message)
	}
}

func TestOrchestrator_InjectedStore(t *testing.T) {
	store, err := fieldschema.LoadFS(os.DirFS("testdata/options"))
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	gen := orchestrator.New(orchestrator.WithFieldStore(store), orchestrator.WithDefaultRenderer("text"))
	out, err := gen.Render(context.Background(), orchestrator.Request{FieldID: "hsl_cost", Value: "12"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(string(out), "What did it cost? [£]") {
		t.Fatalf("unexpected text output %q", out)
	}
	if diff := cmp.Diff([]string{"govuk", "json", "text"}, gen.Renderers().List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}
