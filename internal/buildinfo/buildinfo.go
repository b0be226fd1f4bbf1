package buildinfo

import (
	"runtime/debug"
	"time"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Time is the compile time, "HH:MM:SS", set at build time via -ldflags
// (see cmd/stampflags).
var Time = ""

// Date is the compile date, "Mon DD YYYY" with a space padded day, set at
// build time via -ldflags (see cmd/stampflags).
var Date = ""

// Layouts of Time and Date.
const (
	TimeLayout = "15:04:05"
	DateLayout = "Jan _2 2006"
)

// Short returns a compact build identifier for UI/logging.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Stamp returns the compile time and date. Builds without -ldflags fall
// back to the VCS commit time recorded by the Go toolchain (UTC). When
// neither is available both values are "unknown".
func Stamp() (buildTime, buildDate string) {
	if Time != "" && Date != "" {
		return Time, Date
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if t, d, ok := stampFromSettings(info.Settings); ok {
			return t, d
		}
	}
	return "unknown", "unknown"
}

func stampFromSettings(settings []debug.BuildSetting) (buildTime, buildDate string, ok bool) {
	for _, s := range settings {
		if s.Key != "vcs.time" {
			continue
		}
		t, err := time.Parse(time.RFC3339, s.Value)
		if err != nil {
			return "", "", false
		}
		t = t.UTC()
		return t.Format(TimeLayout), t.Format(DateLayout), true
	}
	return "", "", false
}
