// Package buildinfo carries version metadata stamped in with -ldflags -X.
package buildinfo

import "fmt"

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the short git hash of the build.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String formats the metadata for `tally --version`.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
