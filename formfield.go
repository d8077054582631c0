// Package formfield validates and renders accessible single-line text inputs
// and radios. The subpackages hold the pieces; this package re-exports the
// common entry points.
package formfield

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/orchestrator"
	"github.com/goliatone/go-formfield/pkg/renderers/govuk"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Options is the host-supplied field configuration.
type Options = model.Options

// Configuration is the constraint set derived from Options.
type Configuration = model.Configuration

// Outcome is the result of one validation pass.
type Outcome = model.Outcome

// Request describes a single field render.
type Request = orchestrator.Request

// Resolve derives the constraint set for opts.
func Resolve(opts Options) Configuration {
	return model.Resolve(opts)
}

// Validate runs the text input rules for opts against value, without building
// a control.
func Validate(opts Options, value string) Outcome {
	return validation.Validate(value, model.Resolve(opts), model.FieldLabel(opts),
		validation.WithFocusAnchor(opts.UniqueIdentifier))
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderField loads the option files in fsys and renders one field with the
// named renderer ("govuk" when empty).
func RenderField(ctx context.Context, fsys fs.FS, req Request, options ...orchestrator.Option) ([]byte, error) {
	options = append([]orchestrator.Option{orchestrator.WithOptionsFS(fsys)}, options...)
	gen := orchestrator.New(options...)
	return gen.Render(ctx, req)
}

// WithThemeSelector passes a go-theme selector through to the default HTML
// renderer.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector, name, variant)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return govuk.TemplatesFS()
}
