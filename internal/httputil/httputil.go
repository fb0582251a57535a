// Package httputil provides HTTP-related vocabularies used when splitting
// OpenAPI nodes whose keys are status codes, methods or media types.
package httputil

import (
	"mime"
	"strings"
)

// Path Item operation keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the operation keys of a Path Item in document order.
var Methods = []string{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodOptions, MethodHead, MethodPatch, MethodTrace,
}

// IsStatusCode reports whether key names a response in a Responses object:
// a three digit code from 100 to 599, or a class wildcard "1XX" to "5XX".
// "default" and extension keys are handled by the caller.
func IsStatusCode(key string) bool {
	if len(key) != 3 || key[0] < '1' || key[0] > '5' {
		return false
	}
	if key[1] == 'X' && key[2] == 'X' {
		return true
	}
	return isDigit(key[1]) && isDigit(key[2])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsValidMediaType reports whether mediaType, with optional parameters, is a
// media type or media range such as "application/json", "text/*" or "*/*".
// A wildcard type with a concrete subtype ("*/json") is rejected.
func IsValidMediaType(mediaType string) bool {
	base, _, _ := strings.Cut(mediaType, ";")
	typ, sub, ok := strings.Cut(strings.TrimSpace(base), "/")
	if !ok || typ == "" || sub == "" || (typ == "*" && sub != "*") {
		return false
	}
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}
