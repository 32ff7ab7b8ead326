// Package version holds build metadata set through -ldflags, e.g.
//
//	go build -ldflags "-X github.com/taski-rs/shell/pkg/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

// Name is the program name used in version output
const Name = "xtask"

var (
	// Version is the release version
	Version = "0.1.0-dev"

	// GitCommit is the commit the binary was built from
	GitCommit = "unknown"

	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

// Info returns the one-line version banner
func Info() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, GitCommit, BuildDate)
}

// Short returns just the version number
func Short() string {
	return Version
}
