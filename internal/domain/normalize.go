package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal whitespace runs.
// It tokenizes the same way ParseName does, so for any line with two or more
// tokens NormalizeHumanName(line) equals ParseName(line).String().
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IsBlank reports whether s is empty or whitespace-only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
