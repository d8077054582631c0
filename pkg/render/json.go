package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSONRenderer emits the parameter bundle itself. Hosts that template on the
// client side consume this form.
type JSONRenderer struct {
	indent string
}

// NewJSONRenderer builds a renderer that indents output with indent. An empty
// indent produces compact JSON.
func NewJSONRenderer(indent string) *JSONRenderer {
	return &JSONRenderer{indent: indent}
}

func (r *JSONRenderer) Name() string {
	return "json"
}

func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

func (r *JSONRenderer) Render(_ context.Context, params Params) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(params)
	} else {
		out, err = json.MarshalIndent(params, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("render: encode params: %w", err)
	}
	return out, nil
}
