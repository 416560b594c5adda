package app

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/earthboundkid/versioninfo/v2"
)

// Build information, set at link time:
//
//	go build -ldflags "-X github.com/agbru/fibkm/internal/app.Version=v1.0.0 \
//	  -X github.com/agbru/fibkm/internal/app.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/agbru/fibkm/internal/app.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unset values fall back to the module build information embedded by the Go
// toolchain.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// BuildInfo is the resolved version information.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	Dirty     bool
}

// CurrentBuildInfo merges the link-time values with the embedded build
// information.
func CurrentBuildInfo() BuildInfo {
	info := BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
	if info.Version == "dev" && versioninfo.Version != "unknown" && versioninfo.Version != "(devel)" {
		info.Version = versioninfo.Version
	}
	if info.Commit == "" && versioninfo.Revision != "unknown" {
		info.Commit = versioninfo.Revision
		info.Dirty = versioninfo.DirtyBuild
	}
	if info.BuildDate == "" && !versioninfo.LastCommit.IsZero() {
		info.BuildDate = versioninfo.LastCommit.UTC().Format(time.RFC3339)
	}
	return info
}

// HasVersionFlag reports whether args request the version. The flag is
// recognised before any other parsing so it works alongside invalid flags.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == "--version" || arg == "-version" || arg == "-V" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner.
func PrintVersion(out io.Writer) {
	info := CurrentBuildInfo()
	fmt.Fprintf(out, "fibkm %s\n", info.Version)
	if info.Commit != "" {
		commit := info.Commit
		if len(commit) > 12 {
			commit = commit[:12]
		}
		if info.Dirty {
			commit += "-dirty"
		}
		fmt.Fprintf(out, "Commit: %s\n", commit)
	}
	if info.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", info.BuildDate)
	}
	fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
