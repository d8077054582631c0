package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-formfield/pkg/model"
)

var (
	lettersPattern = regexp.MustCompile(`^[a-zA-Z\-' ]+$`)
	wholePattern   = regexp.MustCompile(`^[0-9]+$`)
	decimalPattern = regexp.MustCompile(`^[.0-9]+$`)
)

// Built-in rule priorities. Higher runs first.
const (
	PriorityEmpty           = 100
	PriorityLengthBetween   = 90
	PriorityTooLong         = 80
	PriorityTooShort        = 70
	PriorityDisallowedChars = 60
	PriorityNotWholeNumber  = 50
	PriorityNotNumber       = 40
	PriorityBetween         = 30
	PriorityTooLow          = 20
	PriorityTooHigh         = 10
)

// BuiltinRules returns the text input rules in their default priority order.
func BuiltinRules() []Rule {
	return []Rule{
		{ID: model.RuleEmpty, Priority: PriorityEmpty, Check: checkEmpty},
		{ID: model.RuleLengthBetween, Priority: PriorityLengthBetween, Check: checkLengthBetween},
		{ID: model.RuleTooLong, Priority: PriorityTooLong, Check: checkTooLong},
		{ID: model.RuleTooShort, Priority: PriorityTooShort, Check: checkTooShort},
		{ID: model.RuleDisallowedChars, Priority: PriorityDisallowedChars, Check: checkDisallowedChars},
		{ID: model.RuleNotWholeNumber, Priority: PriorityNotWholeNumber, Check: checkNotWholeNumber},
		{ID: model.RuleNotNumber, Priority: PriorityNotNumber, Check: checkNotNumber},
		{ID: model.RuleBetween, Priority: PriorityBetween, Check: checkBetween},
		{ID: model.RuleTooLow, Priority: PriorityTooLow, Check: checkTooLow},
		{ID: model.RuleTooHigh, Priority: PriorityTooHigh, Check: checkTooHigh},
	}
}

func checkEmpty(in *Input) (string, bool) {
	if in.Length == 0 {
		return messageEmpty(in.Label), true
	}
	return "", false
}

// checkLengthBetween keeps the comparison the control has always shipped with:
// length >= max AND length <= min under a max > min guard. The two can never
// hold together, so this rule does not fire for any value.
func checkLengthBetween(in *Input) (string, bool) {
	maxLen, minLen := in.Config.MaxLength, in.Config.MinLength
	if maxLen == nil || minLen == nil || *maxLen <= *minLen {
		return "", false
	}
	if in.Length >= *maxLen && in.Length <= *minLen {
		return messageLengthBetween(in.Label, *minLen, *maxLen), true
	}
	return "", false
}

func checkTooLong(in *Input) (string, bool) {
	if maxLen := in.Config.MaxLength; maxLen != nil && in.Length > *maxLen {
		return messageTooLong(in.Label, *maxLen), true
	}
	return "", false
}

func checkTooShort(in *Input) (string, bool) {
	if minLen := in.Config.MinLength; minLen != nil && in.Length < *minLen {
		return messageTooShort(in.Label, *minLen), true
	}
	return "", false
}

func checkDisallowedChars(in *Input) (string, bool) {
	if in.Config.Restriction != model.LettersOnly {
		return "", false
	}
	if !lettersPattern.MatchString(in.Value) {
		return messageDisallowedChars(in.Label), true
	}
	return "", false
}

func checkNotWholeNumber(in *Input) (string, bool) {
	if in.Config.NumericMode != model.NumericWhole {
		return "", false
	}
	if !wholePattern.MatchString(in.Value) {
		return messageNotWholeNumber(in.Label, in.Config.Prefix != ""), true
	}
	return "", false
}

func checkNotNumber(in *Input) (string, bool) {
	if in.Config.NumericMode != model.NumericDecimal {
		return "", false
	}
	if !decimalPattern.MatchString(in.Value) {
		return messageNotNumber(in.Label, in.Config.Prefix != ""), true
	}
	return "", false
}

// checkBetween catches values that cannot be compared against a configured
// range at all. The range comparison itself mirrors the length rule
// (value <= lower AND value >= upper) so ordinary out-of-range values are
// reported by the single-sided rules below.
func checkBetween(in *Input) (string, bool) {
	bounds := in.Config.Bounds
	if !bounds.Both() {
		return "", false
	}
	n := in.Number()
	if math.IsNaN(n) || (n <= *bounds.Lower && n >= *bounds.Upper) {
		return messageBetween(in.Label, *bounds.Lower, *bounds.Upper), true
	}
	return "", false
}

func checkTooLow(in *Input) (string, bool) {
	lower := in.Config.Bounds.Lower
	if lower == nil {
		return "", false
	}
	n := in.Number()
	if math.IsNaN(n) || n <= *lower {
		return messageTooLow(in.Label, *lower), true
	}
	return "", false
}

func checkTooHigh(in *Input) (string, bool) {
	upper := in.Config.Bounds.Upper
	if upper == nil {
		return "", false
	}
	n := in.Number()
	if math.IsNaN(n) || n >= *upper {
		return messageTooHigh(in.Label, *upper), true
	}
	return "", false
}

func parseFloat(value string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return math.NaN()
	}
	return n
}
