package utils

import "strings"

// IsEmpty reports whether the string is empty or whitespace-only.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
