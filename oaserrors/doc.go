// Package oaserrors provides structured error types for the oasfidelity library.
//
// Import path: github.com/erraggy/oasfidelity/oaserrors
//
// Only structural problems are errors. A scalar that fails its semantic parse
// is kept as raw text, an unknown enumeration literal is kept verbatim, a
// reference is never resolved, and unknown fields are retained as extras, so
// none of those conditions has an error type here.
//
// # Error Types
//
//   - [ParseError]: the input is not well-formed JSON or YAML
//   - [MissingFieldError]: a required field is absent; Path names the node
//   - [TypeMismatchError]: a field cannot be read as its declared kind
//   - [ResourceLimitError]: nesting depth or alias expansion limits exceeded
//   - [ConfigError]: invalid options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrMissingField]: Matches any [MissingFieldError]
//   - [ErrTypeMismatch]: Matches any [TypeMismatchError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Errors are returned for the first offending node only; decoding does not
// attempt to recover a partial document.
package oaserrors
