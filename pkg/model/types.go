package model

// WidthClass is the CSS width token applied to a text input.
type WidthClass string

const (
	WidthChars2  WidthClass = "govuk-input--width-2"
	WidthChars3  WidthClass = "govuk-input--width-3"
	WidthChars4  WidthClass = "govuk-input--width-4"
	WidthChars5  WidthClass = "govuk-input--width-5"
	WidthChars10 WidthClass = "govuk-input--width-10"
	WidthChars20 WidthClass = "govuk-input--width-20"

	WidthFull          WidthClass = "govuk-!-width-full"
	WidthThreeQuarters WidthClass = "govuk-!-width-three-quarters"
	WidthTwoThirds     WidthClass = "govuk-!-width-two-thirds"
	WidthOneHalf       WidthClass = "govuk-!-width-one-half"
	WidthOneThird      WidthClass = "govuk-!-width-one-third"
	WidthOneQuarter    WidthClass = "govuk-!-width-one-quarter"
)

// Fixed reports whether the class is a fixed character width.
func (w WidthClass) Fixed() bool {
	_, ok := fixedWidthChars[w]
	return ok
}

// NumericMode selects the numeric format rule applied to the value.
type NumericMode int

const (
	NumericNone NumericMode = iota
	NumericWhole
	NumericDecimal
)

func (m NumericMode) String() string {
	switch m {
	case NumericWhole:
		return "whole"
	case NumericDecimal:
		return "decimal"
	default:
		return "none"
	}
}

// CharacterRestriction limits the characters a value may contain.
type CharacterRestriction int

const (
	Unrestricted CharacterRestriction = iota
	// LettersOnly allows letters a to z, hyphens, spaces and apostrophes.
	LettersOnly
)

// RuleID identifies the validation rule that produced a failure.
type RuleID string

const (
	RuleEmpty           RuleID = "empty"
	RuleLengthBetween   RuleID = "length-between"
	RuleTooLong         RuleID = "too-long"
	RuleTooShort        RuleID = "too-short"
	RuleDisallowedChars RuleID = "disallowed-characters"
	RuleNotWholeNumber  RuleID = "not-whole-number"
	RuleNotNumber       RuleID = "not-a-number"
	RuleBetween         RuleID = "must-be-between"
	RuleTooLow          RuleID = "too-low"
	RuleTooHigh         RuleID = "too-high"
	RuleNothingSelected RuleID = "nothing-selected"
)

// Item is a single choice offered by a radios field.
type Item struct {
	Value string `json:"value" yaml:"value"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Hint  string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Options is the raw configuration surface supplied by the host. Enumerations
// and numbers are kept as the free text the host stores; Resolve interprets
// them.
type Options struct {
	UniqueIdentifier string `json:"uniqueIdentifier" yaml:"uniqueIdentifier"`
	Heading          string `json:"heading,omitempty" yaml:"heading,omitempty"`
	FieldIdentifier  string `json:"fieldIdentifier,omitempty" yaml:"fieldIdentifier,omitempty"`
	Hint             string `json:"hint,omitempty" yaml:"hint,omitempty"`

	Width                string `json:"width,omitempty" yaml:"width,omitempty"`
	InputType            string `json:"inputType,omitempty" yaml:"inputType,omitempty"`
	CharacterRestriction string `json:"characterRestriction,omitempty" yaml:"characterRestriction,omitempty"`
	MinLength            string `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength            string `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	LowerBound           string `json:"lowerBound,omitempty" yaml:"lowerBound,omitempty"`
	UpperBound           string `json:"upperBound,omitempty" yaml:"upperBound,omitempty"`
	Prefix               string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Suffix               string `json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Spellcheck           string `json:"spellcheck,omitempty" yaml:"spellcheck,omitempty"`
	PageHeading          string `json:"pageHeading,omitempty" yaml:"pageHeading,omitempty"`
	// Autocomplete is passed through to the rendered control untouched.
	Autocomplete string `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`

	Items []Item `json:"items,omitempty" yaml:"items,omitempty"`
}

// Bounds holds optional numeric limits. Each side may be absent on its own.
type Bounds struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// Both reports whether both limits are configured.
func (b Bounds) Both() bool {
	return b.Lower != nil && b.Upper != nil
}

// Configuration is the derived constraint set for one field. It is recomputed
// whenever Options change and treated as immutable during a validation pass.
type Configuration struct {
	WidthClass WidthClass `json:"widthClass"`
	// MaxLength is the width-derived maximum when a fixed width is selected,
	// otherwise the explicit maximum. The two are never combined.
	MaxLength   *int                 `json:"maxLength,omitempty"`
	MinLength   *int                 `json:"minLength,omitempty"`
	NumericMode NumericMode          `json:"numericMode"`
	Bounds      Bounds               `json:"bounds"`
	Restriction CharacterRestriction `json:"restriction"`
	Prefix      string               `json:"prefix,omitempty"`
	Suffix      string               `json:"suffix,omitempty"`
	Spellcheck  bool                 `json:"spellcheck"`
	PageHeading bool                 `json:"pageHeading"`
}

// Outcome is the result of a single validation pass. A fresh value is
// produced on every run.
type Outcome struct {
	Valid         bool   `json:"valid"`
	FailedRule    RuleID `json:"failedRule,omitempty"`
	Message       string `json:"message,omitempty"`
	FocusAnchorID string `json:"focusAnchorId,omitempty"`
}

// Pass is the outcome of a run where every rule held.
func Pass() Outcome {
	return Outcome{Valid: true}
}

// Fail builds a failing outcome for rule.
func Fail(rule RuleID, message, focusAnchorID string) Outcome {
	return Outcome{
		FailedRule:    rule,
		Message:       message,
		FocusAnchorID: focusAnchorID,
	}
}
