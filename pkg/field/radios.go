package field

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/model"
	"github.com/goliatone/go-formfield/pkg/presentation"
	"github.com/goliatone/go-formfield/pkg/registry"
	"github.com/goliatone/go-formfield/pkg/render"
	"github.com/goliatone/go-formfield/pkg/validation"
)

// Radios is a single-choice list. Its only rule is that an item is selected,
// and that rule is gated: it applies once the host has refreshed the field
// with nothing selected or asked for validation, and a selection lifts it.
type Radios struct {
	id     string
	opts   model.Options
	cfg    model.Configuration
	label  string
	errors *presentation.Manager
	entry  *registry.Entry
	logger zerolog.Logger
	notify NotifyFunc

	selected string
	gated    bool
}

var _ registry.Evaluator = (*Radios)(nil)

// NewRadios builds the control and publishes it into the configured registry.
func NewRadios(opts model.Options, options ...Option) (*Radios, error) {
	id, err := identifier(opts)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(options...)

	r := &Radios{
		id:       id,
		logger:   cfg.logger,
		notify:   cfg.notify,
		selected: strings.TrimSpace(cfg.value),
	}
	r.Update(opts)

	entry, err := publish(cfg.registry, id, r, r.logger)
	if err != nil {
		return nil, err
	}
	r.entry = entry
	return r, nil
}

// Update applies refreshed host options. A refresh with nothing selected arms
// validation.
func (r *Radios) Update(opts model.Options) {
	opts.UniqueIdentifier = r.id
	r.opts = opts
	r.cfg = model.Resolve(opts)
	r.label = model.FieldLabel(opts)
	r.errors = rebuildManager(r.id, opts, r.errors)

	if r.selected == "" {
		r.gated = true
	}
}

// EnableValidation arms validation and, when nothing is selected, reports the
// failure straight away.
func (r *Radios) EnableValidation() model.Outcome {
	r.gated = true
	if r.selected != "" {
		return model.Pass()
	}
	return r.Evaluate()
}

// Select records the chosen item, clears any error and notifies the host.
func (r *Radios) Select(value string) error {
	value = strings.TrimSpace(value)
	if !r.HasItem(value) {
		return fmt.Errorf("%w: %q for field %q", ErrUnknownItem, value, r.id)
	}

	r.selected = value
	r.gated = false
	r.errors.Hide()
	if r.notify != nil {
		r.notify(r.id, value)
	}
	r.logger.Debug().Str("field", r.id).Str("value", value).Msg("item selected")
	return nil
}

// Evaluate applies the selection rule when armed.
func (r *Radios) Evaluate() model.Outcome {
	r.errors.Hide()
	if !r.gated {
		return model.Pass()
	}

	outcome := validation.ValidateSelection([]string{r.selected}, r.label, validation.WithFocusAnchor(r.id))
	if !outcome.Valid {
		r.errors.Show(outcome.Message)
	}
	logOutcome(r.logger, r.id, outcome)
	return outcome
}

// HasItem reports whether value names a configured item. Without configured
// items any non-empty value is accepted.
func (r *Radios) HasItem(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if len(r.opts.Items) == 0 {
		return true
	}
	for _, item := range r.opts.Items {
		if item.Value == value {
			return true
		}
	}
	return false
}

// ID is the unique identifier.
func (r *Radios) ID() string { return r.id }

// Value is the selected item value, or "".
func (r *Radios) Value() string { return r.selected }

// Label is the name used in error messages.
func (r *Radios) Label() string { return r.label }

// ValidationEnabled reports whether the selection rule is armed.
func (r *Radios) ValidationEnabled() bool { return r.gated }

// Errors returns the presentation state.
func (r *Radios) Errors() presentation.State { return r.errors.State() }

// ErrorFragment renders the active error element, or "".
func (r *Radios) ErrorFragment() string { return r.errors.Fragment() }

// Entry is the registry entry, nil when no registry was supplied.
func (r *Radios) Entry() *registry.Entry { return r.entry }

// Params builds the rendering bundle for the current state.
func (r *Radios) Params() render.Params {
	var selected []string
	if r.selected != "" {
		selected = []string{r.selected}
	}
	return render.BuildRadios(r.opts, r.cfg, selected, r.errors.State())
}
