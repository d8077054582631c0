package validation

import (
	"sort"
	"unicode/utf8"

	"github.com/goliatone/go-formfield/pkg/model"
)

// Input is the value under test together with the derived configuration a
// rule reads. It is built once per pass so every rule sees the same length
// and the same derived limits.
type Input struct {
	Value  string
	Length int
	Label  string
	Config model.Configuration

	number    float64
	hasNumber bool
}

// Number parses the value as a float. Unparsable values are NaN.
func (in *Input) Number() float64 {
	if !in.hasNumber {
		in.number = parseFloat(in.Value)
		in.hasNumber = true
	}
	return in.number
}

// Check inspects the input and reports the failure message when the rule is
// violated.
type Check func(in *Input) (message string, failed bool)

// Rule is a single entry in the pipeline. Higher priority runs first; ties
// keep registration order.
type Rule struct {
	ID       model.RuleID
	Priority int
	Check    Check
}

// Pipeline runs rules in priority order and stops at the first failure.
type Pipeline struct {
	rules []Rule
}

// NewPipeline sorts the provided rules by priority. Rules without a check are
// dropped.
func NewPipeline(rules ...Rule) *Pipeline {
	ordered := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		ordered = append(ordered, rule)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority > ordered[j].Priority
	})
	return &Pipeline{rules: ordered}
}

var defaultPipeline = NewPipeline(BuiltinRules()...)

// Default returns the pipeline holding the built-in text input rules.
func Default() *Pipeline {
	return defaultPipeline
}

// Rules returns the ordered rule identifiers.
func (p *Pipeline) Rules() []model.RuleID {
	if p == nil {
		return nil
	}
	ids := make([]model.RuleID, len(p.rules))
	for i, rule := range p.rules {
		ids[i] = rule.ID
	}
	return ids
}

// Run evaluates value against cfg. Lower-priority rules are not evaluated once
// a rule fails.
func (p *Pipeline) Run(value string, cfg model.Configuration, label string, options ...Option) model.Outcome {
	opts := newOptions(options...)
	if p == nil {
		return model.Pass()
	}

	in := &Input{
		Value:  value,
		Length: utf8.RuneCountInString(value),
		Label:  label,
		Config: cfg,
	}
	for _, rule := range p.rules {
		if message, failed := rule.Check(in); failed {
			return model.Fail(rule.ID, message, opts.focusAnchorID)
		}
	}
	return model.Pass()
}

// Validate runs the built-in text input rules.
func Validate(value string, cfg model.Configuration, label string, options ...Option) model.Outcome {
	return defaultPipeline.Run(value, cfg, label, options...)
}

// ValidateSelection is the radios variant: the only rule is that something is
// selected.
func ValidateSelection(selected []string, label string, options ...Option) model.Outcome {
	opts := newOptions(options...)
	for _, value := range selected {
		if value != "" {
			return model.Pass()
		}
	}
	return model.Fail(model.RuleNothingSelected, messageNothingSelected(label), opts.focusAnchorID)
}

// Option configures a validation run.
type Option func(*options)

type options struct {
	focusAnchorID string
}

// WithFocusAnchor records the element id that should receive focus when the
// failure is reported in a page summary.
func WithFocusAnchor(id string) Option {
	return func(o *options) {
		o.focusAnchorID = id
	}
}

func newOptions(opts ...Option) options {
	var out options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&out)
	}
	return out
}
