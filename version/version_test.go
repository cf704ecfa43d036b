package version

import (
	"runtime/debug"
	"testing"
)

func withBuild(t *testing.T, version, commit string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBuildTime, origInfo := Version, GitCommit, BuildTime, buildInfo
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, buildInfo = origVersion, origCommit, origBuildTime, origInfo
	})
	Version, GitCommit, BuildTime = version, commit, ""
	buildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetWithoutBuildInfo(t *testing.T) {
	withBuild(t, "dev", "", nil)

	info := Get()
	if info.Version != "dev" || info.GitCommit != "" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Short() != "dev" {
		t.Errorf("expected 'dev', got %q", info.Short())
	}
}

func TestGetFromVCS(t *testing.T) {
	withBuild(t, "dev", "", &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	info := Get()
	if info.Version != "0.3.0" {
		t.Errorf("expected module version, got %q", info.Version)
	}
	if info.GitCommit != "0123456" || !info.Dirty {
		t.Errorf("unexpected vcs info %+v", info)
	}
	if got := info.Short(); got != "0.3.0-0123456-dirty" {
		t.Errorf("unexpected short version %q", got)
	}
	if got := info.String(); got != "0.3.0-0123456-dirty (go1.24.1, built 2026-01-02T03:04:05Z)" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestLinkTimeValuesWin(t *testing.T) {
	withBuild(t, "1.2.0", "feedbee", &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		},
	})

	info := Get()
	if info.Version != "1.2.0" || info.GitCommit != "feedbee" {
		t.Errorf("unexpected info %+v", info)
	}
	if f := info.Fields(); f["version"] != "1.2.0" {
		t.Errorf("unexpected fields %v", f)
	}
}
