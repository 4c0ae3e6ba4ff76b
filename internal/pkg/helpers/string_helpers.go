package helpers

import (
	"strings"
	"unicode/utf8"
)

// TrimToNil trims s and returns nil for nil or blank input.
func TrimToNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

// Deref returns *s or "" when s is nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// TooLong reports whether s has more than max runes.
func TooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
