// Package buildinfo carries the version metadata stamped at link time.
package buildinfo

import "fmt"

var (
	// Version is set via ldflags during a release build.
	Version = "dev"
	// Commit is set via ldflags during a release build.
	Commit = "none"
	// Date is set via ldflags during a release build.
	Date = "unknown"
)

// String renders the single version line shown by the --version flag.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
