package events

import (
	"regexp"
	"strings"
)

// Wildcard matches any run of characters inside a kind pattern.
const Wildcard = "*"

// IsPattern reports whether s contains a wildcard.
func IsPattern(s string) bool {
	return strings.Contains(s, Wildcard)
}

// compilePattern turns a wildcard pattern such as "basket-*" or
// "*-errors-changed" into an anchored regular expression.
func compilePattern(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, Wildcard)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile("^" + strings.Join(parts, ".*") + "$")
}

// MatchPattern reports whether kind matches the wildcard pattern.
func MatchPattern(kind Kind, pattern string) bool {
	if !IsPattern(pattern) {
		return string(kind) == pattern
	}
	return compilePattern(pattern).MatchString(string(kind))
}
