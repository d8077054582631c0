package tui

import (
	"context"
	"strings"

	"github.com/goliatone/go-formfield/pkg/render"
)

// TextRenderer prints a parameter bundle as plain text, for terminals and
// logs.
type TextRenderer struct {
	theme Theme
}

var _ render.Renderer = (*TextRenderer)(nil)

// NewTextRenderer builds a text renderer using theme prefixes.
func NewTextRenderer(theme Theme) *TextRenderer {
	return &TextRenderer{theme: theme}
}

func (r *TextRenderer) Name() string {
	return "text"
}

func (r *TextRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *TextRenderer) Render(ctx context.Context, params render.Params) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(promptMessage(params.Label, params.Prefix, params.Suffix))
	b.WriteByte('\n')
	if params.Hint != "" {
		b.WriteString(r.theme.HintPrefix + params.Hint + "\n")
	}
	if params.ErrorMessage != "" {
		b.WriteString(r.theme.ErrorPrefix + params.ErrorMessage + "\n")
	}

	switch params.Kind {
	case render.KindRadios:
		for _, item := range params.Items {
			mark := "( )"
			if item.Checked {
				mark = "(x)"
			}
			b.WriteString(mark + " " + item.Text + "\n")
		}
	default:
		b.WriteString("> " + params.Value + "\n")
	}
	return []byte(b.String()), nil
}
