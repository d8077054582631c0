package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/model"
)

// Transformer mutates a field's options after they are loaded and before the
// control is built. Implementations can relabel fields or override widths
// per deployment without editing the option files.
type Transformer interface {
	Transform(ctx context.Context, field *fieldschema.Field) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, field *fieldschema.Field) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, field *fieldschema.Field) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, field)
}

// JSONPresetTransformer applies declarative overrides loaded from a JSON file.
// Patch keys are option names:
//
//	{
//	  "fields": {
//	    "hsl_age": {"heading": "Your age", "width": "2", "suffix": "years"}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Fields map[string]map[string]string `json:"fields"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	for id, patch := range document.Fields {
		if _, ok := patch["uniqueIdentifier"]; ok {
			return nil, fmt.Errorf("json preset transformer: field %q cannot change its uniqueIdentifier", id)
		}
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform overlays the patch registered for the field, if any.
func (t *JSONPresetTransformer) Transform(ctx context.Context, field *fieldschema.Field) error {
	if field == nil {
		return errors.New("json preset transformer: field is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	patch, ok := t.document.Fields[field.UniqueIdentifier]
	if !ok || len(patch) == 0 {
		return nil
	}

	// Round-trip through the option file's JSON shape so patch keys match the
	// names used on disk.
	current, err := json.Marshal(field.Options)
	if err != nil {
		return fmt.Errorf("json preset transformer: encode %q: %w", field.UniqueIdentifier, err)
	}
	merged := make(map[string]any)
	if err := json.Unmarshal(current, &merged); err != nil {
		return fmt.Errorf("json preset transformer: decode %q: %w", field.UniqueIdentifier, err)
	}
	for key, value := range patch {
		merged[key] = value
	}
	payload, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("json preset transformer: encode patch for %q: %w", field.UniqueIdentifier, err)
	}

	var opts model.Options
	if err := json.Unmarshal(payload, &opts); err != nil {
		return fmt.Errorf("json preset transformer: apply patch to %q: %w", field.UniqueIdentifier, err)
	}
	field.Options = opts
	return nil
}
