package validation

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

func messageEmpty(label string) string {
	return "Enter " + lowerFirst(label)
}

func messageNothingSelected(label string) string {
	return "Select " + lowerFirst(label)
}

func messageLengthBetween(label string, minLen, maxLen int) string {
	return fmt.Sprintf("%s must be between %d and %d characters", upperFirst(label), minLen, maxLen)
}

func messageTooLong(label string, maxLen int) string {
	return fmt.Sprintf("%s must be %d characters or fewer", upperFirst(label), maxLen)
}

func messageTooShort(label string, minLen int) string {
	return fmt.Sprintf("%s must be %d characters or more", upperFirst(label), minLen)
}

func messageDisallowedChars(label string) string {
	return upperFirst(label) + " must only include letters a to z, hyphens, spaces and apostrophes"
}

func messageNotWholeNumber(label string, currency bool) string {
	if currency {
		return upperFirst(label) + " must be a whole number and not include pence, like 123 or 156"
	}
	return upperFirst(label) + " must be a whole number"
}

func messageNotNumber(label string, currency bool) string {
	if currency {
		return upperFirst(label) + " must be a number and include pence, like 123.45 or 156.00"
	}
	return upperFirst(label) + " must be a number"
}

func messageBetween(label string, lower, upper float64) string {
	return fmt.Sprintf("%s must be between %s and %s", upperFirst(label), formatNumber(lower), formatNumber(upper))
}

func messageTooLow(label string, lower float64) string {
	return fmt.Sprintf("%s must be %s or more", upperFirst(label), formatNumber(lower))
}

func messageTooHigh(label string, upper float64) string {
	return fmt.Sprintf("%s must be %s or fewer", upperFirst(label), formatNumber(upper))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// lowerFirst lowercases only the first rune; the rest of the label keeps its
// casing.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
