package version

import "fmt"

// Overridden by the release build through -ldflags -X; local builds report "dev".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String is the text printed by "gosummary --version", e.g.
// "v0.3.0 (commit: 1a2b3c4, built: 2026-10-01)".
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
