package util

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var reSpaces = regexp.MustCompile(`\s+`)

// NormalizeSpaces collapses whitespace runs (including NBSP) to one space and trims.
func NormalizeSpaces(input string) string {
	s := strings.ReplaceAll(input, "\u00A0", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsAnyUpper reports whether the upper-cased input contains any of the
// given markers. Markers are expected in upper case.
func ContainsAnyUpper(input string, markers ...string) bool {
	upper := strings.ToUpper(input)
	for _, m := range markers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// StripLabel removes every occurrence of label from input when input starts
// with it, then trims surrounding whitespace. Other inputs are returned as is.
func StripLabel(input, label string) string {
	if !strings.HasPrefix(input, label) {
		return input
	}
	return strings.TrimSpace(strings.ReplaceAll(input, label, ""))
}

// Cell returns row[idx] trimmed, or "" when the row is too short.
func Cell(row []string, idx int) string {
	if idx >= 0 && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// IsWordRune reports whether r is a letter, a number or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// IsStandalone reports whether s[start:end] has no word rune directly before
// or after it.
func IsStandalone(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); IsWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); IsWordRune(r) {
			return false
		}
	}
	return true
}
