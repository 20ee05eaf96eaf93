package photometa

import "runtime"

// Version is the photometa release. exifmeta reports it through the
// version command.
const Version = "0.1.0"

// GetVersion returns Version.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build that produced the running library or
// exifmeta binary. It is what `exifmeta version` prints.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// GetVersionInfo returns the release plus the build stamps injected with
// -ldflags; stamps that were not injected read "unknown", except GoVersion,
// which falls back to the running toolchain.
//
//	go build -ldflags="-X github.com/simonhull/photometa.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/photometa.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	  ./cmd/exifmeta
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}

// Build stamps, set with -X.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
