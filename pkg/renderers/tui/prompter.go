package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/field"
)

// Prompter asks for field values on a terminal and re-asks until the field
// accepts the value. Errors are shown the same way the HTML renderer shows
// them: one active message, replaced on every attempt.
type Prompter struct {
	driver      PromptDriver
	theme       Theme
	maxAttempts int
	logger      zerolog.Logger
}

// New constructs a prompter backed by the survey driver unless another driver
// is supplied.
func New(options ...Option) *Prompter {
	p := &Prompter{
		theme:  DefaultTheme(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(nil)
	}
	return p
}

// PromptText loops until the text input commits a value.
func (p *Prompter) PromptText(ctx context.Context, f *field.TextInput) (string, error) {
	if f == nil {
		return "", errors.New("tui: text input is nil")
	}
	params := f.Params()

	for attempt := 1; ; attempt++ {
		value, err := p.driver.Input(ctx, InputConfig{
			Message: promptMessage(params.Label, params.Prefix, params.Suffix),
			Default: f.Value(),
			Help:    params.Hint,
		})
		if err != nil {
			return "", err
		}

		outcome := f.Change(value)
		if outcome.Valid {
			return f.Value(), nil
		}
		p.logger.Debug().Str("field", f.ID()).Int("attempt", attempt).Str("rule", string(outcome.FailedRule)).Msg("prompt rejected")

		if err := p.driver.Info(ctx, p.theme.ErrorPrefix+outcome.Message); err != nil {
			return "", err
		}
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, f.ID())
		}
	}
}

// PromptRadios loops until an item is selected.
func (p *Prompter) PromptRadios(ctx context.Context, r *field.Radios) (string, error) {
	if r == nil {
		return "", errors.New("tui: radios field is nil")
	}
	params := r.Params()
	if len(params.Items) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoItems, r.ID())
	}

	labels := make([]string, len(params.Items))
	defaultIndex := -1
	for i, item := range params.Items {
		labels[i] = item.Text
		if item.Hint != "" {
			labels[i] = item.Text + " (" + item.Hint + ")"
		}
		if item.Checked {
			defaultIndex = i
		}
	}

	for attempt := 1; ; attempt++ {
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      params.Label,
			Options:      labels,
			DefaultIndex: defaultIndex,
			Help:         params.Hint,
		})
		if err != nil {
			return "", err
		}
		if idx >= 0 && idx < len(params.Items) {
			if err := r.Select(params.Items[idx].Value); err != nil {
				return "", err
			}
			return r.Value(), nil
		}

		outcome := r.EnableValidation()
		if outcome.Valid {
			return r.Value(), nil
		}
		if err := p.driver.Info(ctx, p.theme.ErrorPrefix+outcome.Message); err != nil {
			return "", err
		}
		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return "", fmt.Errorf("%w: %s", ErrTooManyAttempts, r.ID())
		}
	}
}

func promptMessage(label, prefix, suffix string) string {
	var parts []string
	if label = strings.TrimSpace(label); label != "" {
		parts = append(parts, label)
	}
	var units []string
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		units = append(units, prefix)
	}
	if suffix = strings.TrimSpace(suffix); suffix != "" {
		units = append(units, suffix)
	}
	if len(units) > 0 {
		parts = append(parts, "["+strings.Join(units, " … ")+"]")
	}
	return strings.Join(parts, " ")
}
