package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
)

func init() {
	color.NoColor = true
}

func testOrchestrator(t *testing.T) *orchestrator.Orchestrator {
	t.Helper()
	gen, err := newOrchestrator(Config{Options: filepath.Join("testdata", "options"), Renderer: "govuk"}, logger)
	if err != nil {
		t.Fatalf("new orchestrator: %v", err)
	}
	return gen
}

func TestRunValidate(t *testing.T) {
	tests := []struct {
		name       string
		field      string
		value      string
		jsonOutput bool
		wantErr    bool
		want       string
	}{
		{
			name:  "valid value",
			field: "hsl_cost",
			value: "12",
			want:  "✓ hsl_cost is valid\n",
		},
		{
			name:    "invalid value",
			field:   "hsl_cost",
			value:   "12.5",
			wantErr: true,
			want:    "✗ hsl_cost: Cost must be a whole number and not include pence, like 123 or 156\n",
		},
		{
			name:    "radios without selection",
			field:   "hsl_contactMethod",
			wantErr: true,
			want:    "✗ hsl_contactMethod: Select contact method\n",
		},
	}

	gen := testOrchestrator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runValidate(context.Background(), &buf, gen, tt.field, tt.value, tt.jsonOutput)
			if tt.wantErr != (err != nil) {
				t.Fatalf("runValidate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errValidationFailed) {
				t.Fatalf("expected errValidationFailed, got %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunValidate_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := runValidate(context.Background(), &buf, testOrchestrator(t), "hsl_fullName", "", true)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}

	var got validateResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, buf.String())
	}
	want := validateResult{
		Field: "hsl_fullName",
		Outcome: model.Outcome{
			FailedRule:    model.RuleEmpty,
			Message:       "Enter full name",
			FocusAnchorID: "hsl_fullName",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestRunValidate_UnknownField(t *testing.T) {
	err := runValidate(context.Background(), &bytes.Buffer{}, testOrchestrator(t), "missing", "", false)
	if !errors.Is(err, orchestrator.ErrFieldNotFound) {
		t.Fatalf("expected ErrFieldNotFound, got %v", err)
	}
}

func TestRunCheck(t *testing.T) {
	gen := testOrchestrator(t)

	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, gen, nil, map[string]string{"hsl_cost": "12", "hsl_fullName": "Jo"}, false)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}
	want := "There is a problem\n✗ hsl_contactMethod: Select contact method\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	values := map[string]string{"hsl_contactMethod": "email", "hsl_cost": "12", "hsl_fullName": "Jo"}
	if err := runCheck(context.Background(), &buf, gen, nil, values, false); err != nil {
		t.Fatalf("runCheck: %v", err)
	}
	if buf.String() != "✓ 3 fields valid\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRunCheck_HTMLLinks(t *testing.T) {
	var buf bytes.Buffer
	err := runCheck(context.Background(), &buf, testOrchestrator(t), []string{"hsl_fullName"}, nil, true)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}
	want := "There is a problem\n" +
		`<a href='#hsl_fullName_Container' onclick="javascript:scrollToAndFocus('hsl_fullName_Container', 'hsl_fullName'); return false;">Enter full name</a>` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"a=1", "b=", "c=x=y"})
	if err != nil {
		t.Fatalf("parseAssignments: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"a": "1", "b": "", "c": "x=y"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	for _, bad := range []string{"novalue", "=1"} {
		if _, err := parseAssignments([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRunRender(t *testing.T) {
	gen := testOrchestrator(t)

	var buf bytes.Buffer
	req := orchestrator.Request{FieldID: "hsl_cost", Value: "abc", Validate: true, Renderer: "text"}
	if err := runRender(context.Background(), &buf, gen, req, ""); err != nil {
		t.Fatalf("runRender: %v", err)
	}
	want := "What did it cost? [£]\nError: Cost must be a whole number and not include pence, like 123 or 156\n> abc\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	output := filepath.Join(t.TempDir(), "cost.html")
	if err := runRender(context.Background(), &buf, gen, orchestrator.Request{FieldID: "hsl_cost"}, output); err != nil {
		t.Fatalf("runRender to file: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `id="hsl_cost_Container"`) {
		t.Fatalf("unexpected html\n%s", data)
	}
	if !strings.HasPrefix(buf.String(), "✓ hsl_cost written to ") {
		t.Fatalf("unexpected confirmation %q", buf.String())
	}
}

type scriptedDriver struct {
	inputs  []string
	choices []int
	infos   []string
}

func (d *scriptedDriver) Input(context.Context, tui.InputConfig) (string, error) {
	if len(d.inputs) == 0 {
		return "", tui.ErrAborted
	}
	next := d.inputs[0]
	d.inputs = d.inputs[1:]
	return next, nil
}

func (d *scriptedDriver) Select(context.Context, tui.SelectConfig) (int, error) {
	if len(d.choices) == 0 {
		return 0, tui.ErrAborted
	}
	next := d.choices[0]
	d.choices = d.choices[1:]
	return next, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func TestRunPrompt(t *testing.T) {
	gen := testOrchestrator(t)

	driver := &scriptedDriver{inputs: []string{"", "12"}}
	var buf bytes.Buffer
	if err := runPrompt(context.Background(), &buf, gen, tui.New(tui.WithPromptDriver(driver)), "hsl_cost"); err != nil {
		t.Fatalf("runPrompt: %v", err)
	}
	if buf.String() != "12\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	if diff := cmp.Diff([]string{"Error: Enter cost"}, driver.infos); diff != "" {
		t.Fatalf("infos mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	radios := &scriptedDriver{choices: []int{1}}
	if err := runPrompt(context.Background(), &buf, gen, tui.New(tui.WithPromptDriver(radios)), "hsl_contactMethod"); err != nil {
		t.Fatalf("runPrompt radios: %v", err)
	}
	if buf.String() != "phone\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	err := runPrompt(context.Background(), &buf, gen, tui.New(tui.WithPromptDriver(&scriptedDriver{})), "hsl_fullName")
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed on abort, got %v", err)
	}
	if buf.String() != "✗ hsl_fullName: aborted\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRunOpenAPI(t *testing.T) {
	var buf bytes.Buffer
	if err := runOpenAPI(context.Background(), &buf, filepath.Join("testdata", "api.yaml"), "", true, false, ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if buf.String() != "Address\nContact\n" {
		t.Fatalf("unexpected schema list %q", buf.String())
	}

	buf.Reset()
	if err := runOpenAPI(context.Background(), &buf, filepath.Join("testdata", "api.yaml"), "Contact", false, true, ""); err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, fragment := range []string{
		"page: Contact details\n",
		"    kind: text-input\n",
		"    uniqueIdentifier: phone\n",
		"    heading: Phone number\n",
		"    width: \"6\"\n",
		"    maxLength: \"20\"\n",
		"    autocomplete: tel\n",
	} {
		if !strings.Contains(buf.String(), fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, buf.String())
		}
	}

	if err := runOpenAPI(context.Background(), &buf, filepath.Join("testdata", "api.yaml"), "", false, false, ""); err == nil {
		t.Fatalf("expected error without --schema")
	}
}

func TestRunOpenAPI_OutputRoundTripsThroughOptions(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "contact.yaml")

	var buf bytes.Buffer
	if err := runOpenAPI(context.Background(), &buf, filepath.Join("testdata", "api.yaml"), "Contact", false, false, output); err != nil {
		t.Fatalf("convert: %v", err)
	}

	gen, err := newOrchestrator(Config{Options: output}, logger)
	if err != nil {
		t.Fatalf("load generated options: %v", err)
	}
	buf.Reset()
	err = runValidate(context.Background(), &buf, gen, "phone", strings.Repeat("1", 21), false)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("expected errValidationFailed, got %v", err)
	}
	if buf.String() != "✗ phone: Phone number must be 20 characters or fewer\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("FORMFIELD_LOG_LEVEL", "debug")
	t.Setenv("FORMFIELD_CONFIG", "testdata/options")

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.LogLevel != "debug" || got.Options != "testdata/options" {
		t.Fatalf("unexpected config %+v", got)
	}
	if got.LogFormat != "console" || got.Renderer != "govuk" {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := newLogger("info", "json", &buf, true)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	l.Debug().Msg("hidden")
	l.Info().Str("field", "hsl_cost").Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), `"field":"hsl_cost"`) {
		t.Fatalf("unexpected log output %q", buf.String())
	}

	if _, err := newLogger("loud", "json", &buf, true); err == nil {
		t.Fatalf("expected error for invalid level")
	}
	if _, err := newLogger("info", "xml", &buf, true); err == nil {
		t.Fatalf("expected error for invalid format")
	}
}

func TestNewOrchestrator_MissingOptions(t *testing.T) {
	if _, err := newOrchestrator(Config{Options: filepath.Join(t.TempDir(), "missing")}, logger); err == nil {
		t.Fatalf("expected error for missing options path")
	}
	if _, err := newOrchestrator(Config{Options: t.TempDir()}, logger); err == nil {
		t.Fatalf("expected error for directory without fields")
	}
}
