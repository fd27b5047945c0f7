/*
Package version reports the tool-pages build.

The values are stamped with ldflags by the release build:

	go build -ldflags "-X github.com/aitoolcomparator/tool-pages/internal/version.Version=v0.3.0 \
	  -X github.com/aitoolcomparator/tool-pages/internal/version.Commit=$(git rev-parse --short HEAD) \
	  -X github.com/aitoolcomparator/tool-pages/internal/version.Date=$(date -u +%F)"

A plain go build reports a "dev" build.
*/
package version

import "runtime/debug"

var (
	// Version is the release tag (e.g., v0.3.0)
	Version = "dev"
	// Commit is the short git commit hash
	Commit = "none"
	// Date is the build date in UTC (YYYY-MM-DD)
	Date = "unknown"
)

// Info describes one build.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build. A dev build without a stamped commit falls
// back to the VCS revision recorded by the Go toolchain, when there is one.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if info.Commit != "none" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				info.Commit = s.Value[:7]
			}
		}
	}
	return info
}

// String formats the build for --version output.
func (i Info) String() string {
	if i.Version == "dev" {
		return i.Version + " (development build)"
	}
	return i.Version + " (commit: " + i.Commit + ", built: " + i.Date + ")"
}

// GetVersion returns the current build as a display string.
func GetVersion() string {
	return Get().String()
}
