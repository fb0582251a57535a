package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Version is a semantic version: "major.minor.patch" with an optional
// "-prerelease" and "+build" suffix. All three numeric components are
// required, so "3.0" is not a Version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
}

// ParseVersion parses s as a semantic version.
// Examples: "3.0.3", "3.1.0-rc1", "3.0.0+build.7"
func ParseVersion(s string) (Version, error) {
	var v Version
	rest := s

	// Split off build metadata, then pre-release
	if idx := strings.IndexByte(rest, '+'); idx >= 0 {
		v.Build = rest[idx+1:]
		rest = rest[:idx]
		if !validIdentifiers(v.Build) {
			return Version{}, fmt.Errorf("invalid build metadata: %q", v.Build)
		}
	}
	if idx := strings.IndexByte(rest, '-'); idx >= 0 {
		v.Prerelease = rest[idx+1:]
		rest = rest[:idx]
		if !validIdentifiers(v.Prerelease) {
			return Version{}, fmt.Errorf("invalid pre-release: %q", v.Prerelease)
		}
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}

	nums := [3]*int{&v.Major, &v.Minor, &v.Patch}
	names := [3]string{"major", "minor", "patch"}
	for i, part := range parts {
		n, err := parseComponent(part)
		if err != nil {
			return Version{}, fmt.Errorf("invalid %s version: %q", names[i], part)
		}
		*nums[i] = n
	}
	return v, nil
}

// parseComponent parses a numeric version component: digits only, no
// leading zeros, bounded by MaxInt32.
func parseComponent(s string) (int, error) {
	if s == "" || (len(s) > 1 && s[0] == '0') {
		return 0, fmt.Errorf("invalid component %q", s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid component %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > math.MaxInt32 {
		return 0, fmt.Errorf("invalid component %q", s)
	}
	return n, nil
}

// validIdentifiers reports whether s is a dot-separated list of non-empty
// [0-9A-Za-z-] identifiers.
func validIdentifiers(s string) bool {
	if s == "" {
		return false
	}
	for _, id := range strings.Split(s, ".") {
		if id == "" {
			return false
		}
		for i := 0; i < len(id); i++ {
			c := id[i]
			if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '-') {
				return false
			}
		}
	}
	return true
}

// String returns the version in "major.minor.patch[-pre][+build]" form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare returns -1, 0 or +1 as v is lower than, equal to, or higher than
// other. Build metadata is ignored.
func (v Version) Compare(other Version) int {
	for _, d := range [3][2]int{{v.Major, other.Major}, {v.Minor, other.Minor}, {v.Patch, other.Patch}} {
		if d[0] != d[1] {
			if d[0] < d[1] {
				return -1
			}
			return 1
		}
	}
	// Pre-release version has lower precedence than normal version
	switch {
	case v.Prerelease == other.Prerelease:
		return 0
	case v.Prerelease == "":
		return 1
	case other.Prerelease == "":
		return -1
	}
	// Note: This uses simplified lexicographic comparison, which is sufficient
	// for OpenAPI version strings (e.g., "3.0.0-rc1" < "3.0.0-rc2").
	if v.Prerelease < other.Prerelease {
		return -1
	}
	return 1
}
