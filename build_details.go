package oasfidelity

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via ldflags for release builds.
var (
	version   = ""
	commit    = ""
	buildTime = ""
)

const modulePath = "github.com/erraggy/oasfidelity"

// Version returns the release version of the module, "dev" when built
// from a source checkout.
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := moduleVersion(info); v != "" {
			return v
		}
	}
	return "dev"
}

// moduleVersion finds this module in the build info, as the main module or
// as a dependency of it.
func moduleVersion(info *debug.BuildInfo) string {
	if info.Main.Path == modulePath && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path == modulePath {
			return dep.Version
		}
	}
	return ""
}

// Commit returns the git commit the module was built from, or "unknown".
func Commit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// BuildTime returns the build timestamp in RFC3339 format, or "unknown".
func BuildTime() string {
	if buildTime != "" {
		return buildTime
	}
	return "unknown"
}

// GoVersion returns the Go runtime version
func GoVersion() string {
	return runtime.Version()
}

// BuildInfo returns a formatted string with all build metadata
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
