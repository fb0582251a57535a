// Package stringutil holds small string checks used by the semantic scalar types.
package stringutil

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// SplitEmail splits a valid email address into its local part and domain.
// ok is false when s is not a valid address.
func SplitEmail(s string) (local, domain string, ok bool) {
	if !IsValidEmail(s) {
		return "", "", false
	}
	at := strings.LastIndexByte(s, '@')
	return s[:at], s[at+1:], true
}
