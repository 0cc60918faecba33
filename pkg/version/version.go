// Package version reports the macpack build identity.
package version

import (
	"fmt"
	"runtime"
)

// Name of the application
const Name = "macpack"

// Set with -ldflags "-X github.com/macreleaser/macpack/pkg/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// VersionInfo returns complete version information
func VersionInfo() string {
	return fmt.Sprintf("%s version %s\nCommit: %s\nBuilt: %s\nGo version: %s (%s/%s)",
		Name, Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// ShortVersion returns name and version only
func ShortVersion() string {
	return fmt.Sprintf("%s %s", Name, Version)
}
