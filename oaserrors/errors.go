// Package oaserrors provides structured error types for oasfidelity.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a document that is not
// well-formed text from one whose structure cannot be navigated.
//
// # Error Categories
//
//   - ParseError: YAML/JSON syntax failures reported by the text codec
//   - MissingFieldError: a required field is absent from a document node
//   - TypeMismatchError: a field has a shape incompatible with its declared kind
//   - ResourceLimitError: Resource exhaustion (nesting depth, alias expansion)
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.As
//
//	doc, err := parser.Parse(text)
//	if err != nil {
//	    var missing *oaserrors.MissingFieldError
//	    if errors.As(err, &missing) {
//	        fmt.Println("missing", missing.Field, "at", missing.Path)
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates the input text is not well-formed JSON or YAML.
	ErrParse = errors.New("parse error")

	// ErrMissingField indicates a required field was absent.
	ErrMissingField = errors.New("missing required field")

	// ErrTypeMismatch indicates a field had the wrong structural shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents input that the text codec could not read.
// No partial document is produced when this error is returned.
type ParseError struct {
	// Path is the source identifier (file name or a synthetic name)
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Column is the column number where the error occurred (0 if unknown)
	Column int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// MissingFieldError reports a required known field that is absent.
type MissingFieldError struct {
	// Path locates the node that should contain the field (e.g., "paths[\"/pets\"].get")
	Path string
	// Field is the document-facing name of the missing field
	Field string
}

// Error returns a human-readable error message.
func (e *MissingFieldError) Error() string {
	msg := "missing required field"
	if e.Field != "" {
		msg += " '" + e.Field + "'"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// FieldPath returns the full path of the missing field.
func (e *MissingFieldError) FieldPath() string {
	if e.Path == "" {
		return e.Field
	}
	return e.Path + "." + e.Field
}

// Is reports whether target matches this error type.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// TypeMismatchError reports a field whose shape cannot be decoded as its
// declared structural kind.
type TypeMismatchError struct {
	// Path is the path to the offending value
	Path string
	// Expected names the kind the field requires (e.g., "object", "string")
	Expected string
	// Actual names the kind that was found
	Actual string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Actual != "" {
			msg += ", got " + e.Actual
		}
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ResourceLimitError represents a resource exhaustion condition.
// This occurs when decoding exceeds configured limits.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "nesting_depth", "alias_expansions"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
