// Package version holds the version of the running binary. The values are
// set via ldflags when building, or from the build info in the main package.
package version

var (
	// Version is the version of notify-hook.
	Version = "dev"

	// CommitSHA is the commit SHA notify-hook was built from.
	CommitSHA = ""
)
