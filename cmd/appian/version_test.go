package main

import (
	"bytes"
	"testing"

	"appian/internal/version"
)

func TestCurrentBuildPrefersLdflags(t *testing.T) {
	oldCommit, oldDate := version.GitCommit, version.BuildDate
	t.Cleanup(func() { version.GitCommit, version.BuildDate = oldCommit, oldDate })
	version.GitCommit, version.BuildDate = " abc123 ", ""

	vcs := map[string]string{"vcs.revision": "fromvcs", "vcs.time": "2026-01-01T00:00:00Z"}
	info := currentBuild(true, true, vcs)
	if info.GitCommit != "abc123" || info.BuildDate != "2026-01-01T00:00:00Z" {
		t.Fatalf("info = %+v", info)
	}

	info = currentBuild(false, true, nil)
	if info.GitCommit != "" || info.BuildDate != "unknown" {
		t.Fatalf("info = %+v", info)
	}
}

func TestWriteVersionSkipsUnrequested(t *testing.T) {
	var buf bytes.Buffer
	writeVersion(&buf, buildInfo{Tool: "appian", Version: "1.2.3", BuildDate: "unknown"}, false)

	want := "appian 1.2.3\nbuilt:  unknown\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
