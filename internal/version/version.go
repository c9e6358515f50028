package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/IceTiki/cfst-builder/internal/version.Version=1.0.0"
var (
	// Version is the semantic version of the application
	Version = "0.3.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "IceTiki"

	// Year of release
	Year = "2024"
)

// String formats the version with its build metadata
func String() string {
	return fmt.Sprintf("cfst v%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
