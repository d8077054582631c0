package field

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/presentation"
	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// TextInput is a single-line text control with the built-in validation rules.
type TextInput struct {
	id       string
	opts     model.Options
	cfg      model.Configuration
	label    string
	pipeline *validation.Pipeline
	errors   *presentation.Manager
	entry    *registry.Entry
	logger   zerolog.Logger
	notify   NotifyFunc

	committed string
	current   string
}

var _ registry.Evaluator = (*TextInput)(nil)

// NewTextInput builds the control and publishes it into the configured
// registry.
func NewTextInput(opts model.Options, options ...Option) (*TextInput, error) {
	id, err := identifier(opts)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(options...)

	f := &TextInput{
		id:        id,
		pipeline:  cfg.pipeline,
		logger:    cfg.logger,
		notify:    cfg.notify,
		committed: cfg.value,
		current:   cfg.value,
	}
	f.apply(opts)

	entry, err := publish(cfg.registry, id, f, f.logger)
	if err != nil {
		return nil, err
	}
	f.entry = entry
	return f, nil
}

// Update re-resolves the configuration from refreshed host options. The
// unique identifier cannot change after construction.
func (f *TextInput) Update(opts model.Options) {
	f.apply(opts)
}

func (f *TextInput) apply(opts model.Options) {
	opts.UniqueIdentifier = f.id
	f.opts = opts
	f.cfg = model.Resolve(opts)
	f.label = model.FieldLabel(opts)
	f.errors = rebuildManager(f.id, opts, f.errors)
}

// Change handles a value edit. The value is committed, and the host
// notified, only when it passes validation; otherwise the previous committed
// value is kept.
func (f *TextInput) Change(value string) model.Outcome {
	f.current = value
	outcome := f.Evaluate()
	if !outcome.Valid {
		return outcome
	}

	f.committed = value
	if f.notify != nil {
		f.notify(f.id, value)
	}
	return outcome
}

// Evaluate validates the current value and updates the error presentation.
func (f *TextInput) Evaluate() model.Outcome {
	outcome := f.pipeline.Run(f.current, f.cfg, f.label, validation.WithFocusAnchor(f.id))
	if outcome.Valid {
		f.errors.Hide()
	} else {
		f.errors.Show(outcome.Message)
	}
	logOutcome(f.logger, f.id, outcome)
	return outcome
}

// ID is the unique identifier.
func (f *TextInput) ID() string { return f.id }

// Value is the last committed value.
func (f *TextInput) Value() string { return f.committed }

// Current is the last value seen, valid or not.
func (f *TextInput) Current() string { return f.current }

// Label is the name used in error messages.
func (f *TextInput) Label() string { return f.label }

// Options returns the options the field was last configured with.
func (f *TextInput) Options() model.Options { return f.opts }

// Configuration returns the derived constraint set.
func (f *TextInput) Configuration() model.Configuration { return f.cfg }

// Errors returns the presentation state.
func (f *TextInput) Errors() presentation.State { return f.errors.State() }

// ErrorFragment renders the active error element, or "".
func (f *TextInput) ErrorFragment() string { return f.errors.Fragment() }

// Entry is the registry entry, nil when no registry was supplied.
func (f *TextInput) Entry() *registry.Entry { return f.entry }

// Params builds the rendering bundle for the current state.
func (f *TextInput) Params() render.Params {
	return render.BuildTextInput(f.opts, f.cfg, f.current, f.errors.State())
}
