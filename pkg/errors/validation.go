package errors

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateText validates a piece of display text (label, caption, name).
// It rejects only what cannot appear in a markup document: invalid UTF-8
// and control characters other than tab, newline and carriage return.
// The empty string is accepted.
func ValidateText(field, s string) error {
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidSpec, "%s is not valid UTF-8", field)
	}
	for _, r := range s {
		if !xmlChar(r) {
			return New(ErrCodeInvalidSpec, "%s contains character %U, which markup cannot carry", field, r)
		}
	}
	return nil
}

// xmlChar reports whether r is in the XML 1.0 Char production.
func xmlChar(r rune) bool {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF, r == 0xFFFE, r == 0xFFFF:
		return false
	}
	return r <= unicode.MaxRune
}

// ValidateChoice checks that value is one of allowed.
// The comparison is case-sensitive; callers normalize first.
func ValidateChoice(field, value string, allowed ...string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(ErrCodeInvalidInput, "invalid %s: %q (must be one of: %s)", field, value, strings.Join(allowed, ", "))
}
