// Package version exposes the build version of gridview. The variables are set at link
// time with -ldflags "-X github.com/rshade/gridview/pkg/version.version=...".
package version

import (
	"fmt"
	"runtime"
)

//nolint:gochecknoglobals // Overridden at link time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string { return version }

// GetGitCommit returns the commit this build was made from.
func GetGitCommit() string { return gitCommit }

// GetBuildDate returns when this build was made.
func GetBuildDate() string { return buildDate }

// String describes the build on one line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s/%s)", version, gitCommit, buildDate, runtime.GOOS, runtime.GOARCH)
}
