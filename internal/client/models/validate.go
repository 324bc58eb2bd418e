package models

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the shortest password the backend accepts.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether s looks like an e-mail address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}

// SanitizeText trims surrounding whitespace and collapses internal runs of
// whitespace to single spaces.
func SanitizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate shortens s to at most max runes, appending an ellipsis when it
// had to cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}
