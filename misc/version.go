// Package misc keeps application identity helpers in one place.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "songc"

// GetAppName returns short program name used for logs, temporary files and reports.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

// GetVersion returns module version as recorded by the Go toolchain.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || len(bi.Main.Version) == 0 {
		return "unknown"
	}
	return bi.Main.Version
}

// GetGitHash returns VCS revision embedded into the binary, if any.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
