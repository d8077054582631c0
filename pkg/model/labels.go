package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// FieldLabel returns the name used for the field in error messages. The
// configured field identifier wins, then the heading, then a label derived
// from the unique identifier.
func FieldLabel(opts Options) string {
	if label := strings.TrimSpace(opts.FieldIdentifier); label != "" {
		return label
	}
	if heading := strings.TrimSpace(opts.Heading); heading != "" {
		return heading
	}
	return DefaultLabeler(opts.UniqueIdentifier)
}

// DefaultLabeler converts an identifier into a sentence-case label, splitting
// on underscores, dashes and camelCase boundaries ("full_name" -> "Full name").
func DefaultLabeler(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		segments = append(segments, strings.ToLower(splitCamel(word)))
	}
	label := strings.TrimSpace(strings.Join(segments, " "))
	if label == "" {
		return ""
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
