package model

import (
	"math"
	"strconv"
	"strings"
)

// widthSelections maps the host's width enumeration onto CSS classes. Entries
// 1-6 are fixed character widths, 7-12 fluid fractions of the container.
var widthSelections = map[string]WidthClass{
	"1":  WidthChars2,
	"2":  WidthChars3,
	"3":  WidthChars4,
	"4":  WidthChars5,
	"5":  WidthChars10,
	"6":  WidthChars20,
	"7":  WidthFull,
	"8":  WidthThreeQuarters,
	"9":  WidthTwoThirds,
	"10": WidthOneHalf,
	"11": WidthOneThird,
	"12": WidthOneQuarter,
}

var fixedWidthChars = map[WidthClass]int{
	WidthChars2:  2,
	WidthChars3:  3,
	WidthChars4:  4,
	WidthChars5:  5,
	WidthChars10: 10,
	WidthChars20: 20,
}

// Resolve derives the constraint set for opts. It is a pure function of its
// input and never fails: unknown enumerations and unparsable numbers resolve
// to "no constraint".
func Resolve(opts Options) Configuration {
	cfg := Configuration{
		WidthClass:  ResolveWidth(opts.Width),
		MinLength:   parseLength(opts.MinLength),
		NumericMode: parseNumericMode(opts.InputType),
		Bounds: Bounds{
			Lower: parseNumber(opts.LowerBound),
			Upper: parseNumber(opts.UpperBound),
		},
		Prefix:      strings.TrimSpace(opts.Prefix),
		Suffix:      strings.TrimSpace(opts.Suffix),
		Spellcheck:  ParseToggle(opts.Spellcheck, true),
		PageHeading: ParseToggle(opts.PageHeading, false),
	}

	if ParseToggle(opts.CharacterRestriction, false) {
		cfg.Restriction = LettersOnly
	}

	if chars, ok := fixedWidthChars[cfg.WidthClass]; ok {
		cfg.MaxLength = &chars
	} else {
		cfg.MaxLength = parseLength(opts.MaxLength)
	}

	return cfg
}

// ResolveWidth returns the CSS class for a width selection. An empty or
// unknown selection is full fluid width.
func ResolveWidth(selection string) WidthClass {
	if class, ok := widthSelections[strings.TrimSpace(selection)]; ok {
		return class
	}
	return WidthFull
}

// FixedWidthChars reports the character count implied by a fixed width class.
func FixedWidthChars(class WidthClass) (int, bool) {
	chars, ok := fixedWidthChars[class]
	return chars, ok
}

// ParseToggle interprets the host's two-state enumerations ("1" on, "2" off)
// along with the usual boolean spellings. Anything else yields fallback.
func ParseToggle(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on", "enabled":
		return true
	case "2", "0", "false", "no", "off", "disabled":
		return false
	default:
		return fallback
	}
}

func parseNumericMode(raw string) NumericMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "whole", "wholenumber", "integer":
		return NumericWhole
	case "2", "decimal", "decimalnumber", "number":
		return NumericDecimal
	default:
		return NumericNone
	}
}

func parseLength(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func parseNumber(raw string) *float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
