// Package version reports how the runseg binary was built.
//
// Release builds set Version, Commit and Date through ldflags:
//
//	go build -ldflags "-X github.com/jmylchreest/runseg/internal/version.Version=1.0.0 \
//	  -X github.com/jmylchreest/runseg/internal/version.Commit=$(git rev-parse HEAD) \
//	  -X github.com/jmylchreest/runseg/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Anything left unset falls back to the module version and VCS stamp that
// the Go toolchain embeds, so `go install` builds still identify themselves.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Set through ldflags.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes a build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo resolves the build information, preferring ldflags values.
func GetInfo() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// ShortCommit returns at most the first eight characters of the commit.
func (i Info) ShortCommit() string {
	const n = 8
	if len(i.Commit) > n {
		return i.Commit[:n]
	}
	return i.Commit
}

func (i Info) String() string {
	if i.Commit == unknown {
		return fmt.Sprintf("runseg version %s (%s, %s)", i.Version, i.GoVersion, i.Platform)
	}
	commit := i.ShortCommit()
	if i.Modified {
		commit += "-dirty"
	}
	built := ""
	if i.Date != unknown {
		built = ", built: " + i.Date
	}
	return fmt.Sprintf("runseg version %s (commit: %s%s, %s, %s)", i.Version, commit, built, i.GoVersion, i.Platform)
}

// String returns the human-readable version line.
func String() string {
	return GetInfo().String()
}

// Short returns just the version, for --version.
func Short() string {
	return GetInfo().Version
}
