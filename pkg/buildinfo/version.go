// Package buildinfo provides build-time version information for wgraph.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/graphlab/wgraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/graphlab/wgraph/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/graphlab/wgraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/wgraph
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Summary returns a single-line description such as "v1.2.3 (abc123, 2025-01-02)".
func Summary() string {
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
