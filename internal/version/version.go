// Package version reports the build stamped into the teamsel binary.
package version

import "fmt"

// Stamped by the linker:
//
//	go build -ldflags "-X github.com/example/teamsel/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String is the text printed by teamsel --version.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if BuildTime == "unknown" {
		return fmt.Sprintf("teamsel dev (commit: %s)", commit)
	}
	return fmt.Sprintf("teamsel dev (commit: %s, built: %s)", commit, BuildTime)
}
