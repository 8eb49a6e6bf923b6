package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	}()

	Version = "1.0.0"
	Commit = "abc123def456"
	Date = "2026-01-01T12:00:00Z"

	info := GetInfo()

	if info.Version != "1.0.0" {
		t.Errorf("GetInfo().Version = %v, want 1.0.0", info.Version)
	}
	if info.Commit != "abc123def456" {
		t.Errorf("GetInfo().Commit = %v, want abc123def456", info.Commit)
	}
	if info.Date != "2026-01-01T12:00:00Z" {
		t.Errorf("GetInfo().Date = %v, want 2026-01-01T12:00:00Z", info.Date)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GetInfo().GoVersion = %v, want %v", info.GoVersion, runtime.Version())
	}
	if want := runtime.GOOS + "/" + runtime.GOARCH; info.Platform != want {
		t.Errorf("GetInfo().Platform = %v, want %v", info.Platform, want)
	}
}

func TestFillFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-02-03T04:05:06Z"},
		},
	}

	info := Info{Version: "dev", Commit: "unknown", Date: "unknown"}
	fillFromBuildInfo(&info, bi)

	if info.Version != "v0.3.0" || info.Commit != "0123456789abcdef" || info.Date != "2026-02-03T04:05:06Z" {
		t.Errorf("fillFromBuildInfo() = %+v", info)
	}

	injected := Info{Version: "1.2.3", Commit: "feed", Date: "today"}
	fillFromBuildInfo(&injected, bi)
	if injected.Version != "1.2.3" || injected.Commit != "feed" || injected.Date != "today" {
		t.Errorf("ldflags values overwritten: %+v", injected)
	}

	devel := Info{Version: "dev"}
	fillFromBuildInfo(&devel, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if devel.Version != "dev" {
		t.Errorf("devel build version = %q, want dev", devel.Version)
	}
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "1.0.0",
		Commit:    "abc123def456789",
		Date:      "2026-01-01",
		GoVersion: "go1.24.0",
		Platform:  "linux/amd64",
	}

	got := info.String()
	for _, want := range []string{"coffman 1.0.0", "(abc123de)", "built 2026-01-01", "go1.24.0", "linux/amd64"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}

	if got := info.Short(); got != "1.0.0" {
		t.Errorf("Short() = %q, want 1.0.0", got)
	}
	if got := (Info{Commit: "abc"}).ShortCommit(); got != "abc" {
		t.Errorf("ShortCommit() = %q, want abc", got)
	}
}
