// Package version holds build metadata injected at link time.
package version

import "runtime"

// Set via ldflags at build time, e.g.:
//
//	-X github.com/jackzampolin/scribe/version.GitRelease=v0.2.0
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
)

// GoInfo reports the Go runtime the binary was built with.
var GoInfo = runtime.Version()
