package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/fieldschema"
	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/renderers/govuk"
	"github.com/goliatone/go-formfield/pkg/renderers/tui"
	"github.com/goliatone/go-formfield/pkg/validation"
)

const defaultRendererName = "govuk"

// ErrFieldNotFound is returned when no loaded option file defines a field.
var ErrFieldNotFound = errors.New("orchestrator: field not found")

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithFieldStore supplies pre-loaded field options.
func WithFieldStore(store *fieldschema.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithOptionsFS loads every option file found in fsys. Ignored when a store
// was supplied with WithFieldStore.
func WithOptionsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.optionsFS = fsys
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.renderers = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = strings.TrimSpace(name)
	}
}

// WithTransformer registers a Transformer applied to every field before its
// control is built.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithPipeline replaces the text input rules for every control.
func WithPipeline(pipeline *validation.Pipeline) Option {
	return func(o *Orchestrator) {
		o.pipeline = pipeline
	}
}

// WithLogger sets the logger handed to controls, registries and renderers.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithThemeSelector passes a go-theme selector to the default govuk renderer.
// It has no effect when a renderer registry is injected.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(o *Orchestrator) {
		o.govukOptions = append(o.govukOptions, govuk.WithThemeSelector(selector, name, variant))
	}
}

// WithTemplatesDir layers templates from dir over the default govuk
// renderer's built-in set.
func WithTemplatesDir(dir string) Option {
	return func(o *Orchestrator) {
		o.govukOptions = append(o.govukOptions, govuk.WithTemplatesDir(dir))
	}
}

// Orchestrator resolves field options into controls and renders them. It
// applies sensible defaults (govuk, json and text renderers, built-in rules)
// while remaining open to dependency injection.
type Orchestrator struct {
	store           *fieldschema.Store
	optionsFS       fs.FS
	renderers       *render.Registry
	defaultRenderer string
	transformer     Transformer
	pipeline        *validation.Pipeline
	logger          zerolog.Logger
	govukOptions    []govuk.Option
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.store == nil {
		store, err := fieldschema.LoadFS(o.optionsFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load options: %w", err)
			return
		}
		o.store = store
	}
	if o.pipeline == nil {
		o.pipeline = validation.Default()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.renderers == nil {
		o.renderers = render.NewRegistry()
		html, err := govuk.New(append([]govuk.Option{govuk.WithLogger(o.logger)}, o.govukOptions...)...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.renderers.MustRegister(html)
		o.renderers.MustRegister(render.NewJSONRenderer("  "))
		o.renderers.MustRegister(tui.NewTextRenderer(tui.DefaultTheme()))
	}
}

// Err reports a failure from applying defaults, such as an unreadable option
// file.
func (o *Orchestrator) Err() error {
	return o.initialiseErr
}

// Store returns the loaded field options.
func (o *Orchestrator) Store() *fieldschema.Store {
	return o.store
}

// Renderers returns the renderer registry.
func (o *Orchestrator) Renderers() *render.Registry {
	return o.renderers
}

// Control is the behaviour shared by every field control.
type Control interface {
	registry.Evaluator
	ID() string
	Label() string
	Params() render.Params
}

var (
	_ Control = (*field.TextInput)(nil)
	_ Control = (*field.Radios)(nil)
)

// Request describes a single field render.
type Request struct {
	// FieldID selects the field from the loaded option files.
	FieldID string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// Value seeds the field: the typed text, or the selected item value.
	Value string

	// Validate evaluates the field before rendering so an active error is part
	// of the output.
	Validate bool
}

// Field returns the options for id with the transformer applied.
func (o *Orchestrator) Field(ctx context.Context, id string) (fieldschema.Field, error) {
	if err := o.ready(ctx); err != nil {
		return fieldschema.Field{}, err
	}
	f, ok := o.store.Field(id)
	if !ok {
		return fieldschema.Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, id)
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &f); err != nil {
			return fieldschema.Field{}, fmt.Errorf("orchestrator: transform field %q: %w", id, err)
		}
	}
	return f, nil
}

// Control builds a standalone control for id seeded with value. It is not
// published into any page registry.
func (o *Orchestrator) Control(ctx context.Context, id, value string, options ...field.Option) (Control, error) {
	f, err := o.Field(ctx, id)
	if err != nil {
		return nil, err
	}
	return o.build(f, value, options...)
}

// Validate runs the field's rules against value.
func (o *Orchestrator) Validate(ctx context.Context, id, value string) (model.Outcome, error) {
	control, err := o.Control(ctx, id, value)
	if err != nil {
		return model.Outcome{}, err
	}
	return evaluate(control), nil
}

// Render builds the requested field and renders it.
func (o *Orchestrator) Render(ctx context.Context, req Request) ([]byte, error) {
	if strings.TrimSpace(req.FieldID) == "" {
		return nil, errors.New("orchestrator: field id is required")
	}
	control, err := o.Control(ctx, req.FieldID, req.Value)
	if err != nil {
		return nil, err
	}
	if req.Validate {
		evaluate(control)
	}
	return o.RenderControl(ctx, control, req.Renderer)
}

// RenderControl renders an already built control with the named renderer.
func (o *Orchestrator) RenderControl(ctx context.Context, control Control, rendererName string) ([]byte, error) {
	if control == nil {
		return nil, errors.New("orchestrator: control is nil")
	}
	renderer, err := o.rendererFor(rendererName)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, control.Params())
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func (o *Orchestrator) build(f fieldschema.Field, value string, extra ...field.Option) (Control, error) {
	options := []field.Option{
		field.WithLogger(o.logger),
		field.WithPipeline(o.pipeline),
	}
	options = append(options, extra...)

	switch f.Kind {
	case render.KindRadios:
		radios, err := field.NewRadios(f.Options, append(options, field.WithValue(value))...)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: build %q: %w", f.UniqueIdentifier, err)
		}
		if value = strings.TrimSpace(value); value != "" && !radios.HasItem(value) {
			return nil, fmt.Errorf("orchestrator: build %q: %w: %q", f.UniqueIdentifier, field.ErrUnknownItem, value)
		}
		return radios, nil
	default:
		options = append(options, field.WithValue(value))
		input, err := field.NewTextInput(f.Options, options...)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: build %q: %w", f.UniqueIdentifier, err)
		}
		return input, nil
	}
}

// evaluate validates a control the way a page submit would. Radios are armed
// first so an empty selection is reported.
func evaluate(control Control) model.Outcome {
	if radios, ok := control.(*field.Radios); ok {
		return radios.EnableValidation()
	}
	return control.Evaluate()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.renderers == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := strings.TrimSpace(name)
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.renderers.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.renderers.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.renderers.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}
