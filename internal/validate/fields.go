package validate

import (
	"regexp"
	"strings"
)

// Coarse syntactic check only: local-part@domain-with-dot. Deliverability
// and MX lookups are not this service's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsNonEmpty reports whether s contains anything besides whitespace.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsNonEmptySlice reports whether items has at least one element and every
// element is non-empty after trimming.
func IsNonEmptySlice(items []string) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !IsNonEmpty(item) {
			return false
		}
	}
	return true
}

// IsValidEmail reports whether s looks like an email address. Callers are
// expected to lowercase and trim before persisting.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
