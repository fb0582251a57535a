// Package options provides shared utilities for option validation.
package options

import (
	"strings"

	"github.com/erraggy/oasfidelity/oaserrors"
)

// InputSource names an option that supplies input and whether it was used.
type InputSource struct {
	Option string
	Set    bool
}

// ValidateSingleInputSource ensures exactly one input source is specified.
// It returns a *oaserrors.ConfigError naming the offending options otherwise.
func ValidateSingleInputSource(sources ...InputSource) error {
	var all, set []string
	for _, src := range sources {
		all = append(all, src.Option)
		if src.Set {
			set = append(set, src.Option)
		}
	}

	switch len(set) {
	case 1:
		return nil
	case 0:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source (use " + joinOr(all) + ")",
		}
	default:
		return &oaserrors.ConfigError{
			Option:  "input",
			Message: "must specify exactly one input source, got " + strings.Join(set, ", "),
		}
	}
}

func joinOr(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", or " + names[len(names)-1]
}

// ValidateNonNegative rejects a negative limit passed to the named option.
// Limits set through options cannot disable a check; only the Parser fields
// accept negative values for that.
func ValidateNonNegative[T ~int | ~int64](option string, n T) error {
	if n < 0 {
		return &oaserrors.ConfigError{Option: option, Value: n, Message: "must not be negative"}
	}
	return nil
}
