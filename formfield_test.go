package formfield_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	formfield "github.com/goliatone/go-formfield"
	"github.com/goliatone/go-formfield/pkg/model"
)

func TestValidate(t *testing.T) {
	got := formfield.Validate(formfield.Options{
		UniqueIdentifier: "hsl_age",
		FieldIdentifier:  "Age",
		LowerBound:       "16",
		UpperBound:       "99",
	}, "12")
	want := formfield.Outcome{
		FailedRule:    model.RuleTooLow,
		Message:       "Age must be 16 or more",
		FocusAnchorID: "hsl_age",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FixedWidthWins(t *testing.T) {
	cfg := formfield.Resolve(formfield.Options{Width: "2", MaxLength: "50"})
	if cfg.MaxLength == nil || *cfg.MaxLength != 3 {
		t.Fatalf("expected width-derived max length 3, got %v", cfg.MaxLength)
	}
}

func TestRenderField(t *testing.T) {
	files := fstest.MapFS{
		"page.json": {Data: []byte(`{"fields":{"hsl_name":{"heading":"Name","hint":"Full name"}}}`)},
	}
	out, err := formfield.RenderField(context.Background(), files, formfield.Request{FieldID: "hsl_name", Validate: true})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, fragment := range []string{`id="hsl_name-hint"`, `Enter name`} {
		if !strings.Contains(string(out), fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(formfield.EmbeddedTemplates(), "text-input.njk"); err != nil {
		t.Fatalf("expected text input template: %v", err)
	}
}
