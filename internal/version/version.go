// Package version carries build metadata injected at link time.
package version

import "fmt"

// Version is the folio release. Set with:
// go build -ldflags "-X git.home.luguber.info/inful/folio/internal/version.Version=v0.3.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the metadata for `folio --version`.
func String() string {
	return fmt.Sprintf("folio %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
