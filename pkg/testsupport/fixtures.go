package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-formfield/pkg/model"
)

// MustLoadOptions reads a JSON fixture holding a single field's options.
func MustLoadOptions(t *testing.T, path string) model.Options {
	t.Helper()

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("load options: %v", err)
	}
	return opts
}

// LoadOptions reads a JSON fixture into Options, returning an error for
// callers managing setup outside of *testing.T.
func LoadOptions(path string) (model.Options, error) {
	if path == "" {
		return model.Options{}, errors.New("testsupport: options path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Options{}, fmt.Errorf("testsupport: read options: %w", err)
	}
	var out model.Options
	if err := json.Unmarshal(data, &out); err != nil {
		return model.Options{}, fmt.Errorf("testsupport: unmarshal options: %w", err)
	}
	return out, nil
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
