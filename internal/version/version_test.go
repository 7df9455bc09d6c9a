package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestCurrentDefaults(t *testing.T) {
	info := Current()
	if info.Tool != "cssvalue" || info.Version == "" {
		t.Fatalf("info = %+v", info)
	}
}

func TestCurrentCanBeOverridden(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = " 1.2.3 "
	GitCommit = "abc123"
	BuildDate = "2024-01-15T10:30:00Z"
	info := Current()
	if info.Version != "1.2.3" || info.GitCommit != "abc123" || info.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("info = %+v", info)
	}

	Version = ""
	if got := Current().Version; got != "dev" {
		t.Fatalf("empty version = %q, want dev", got)
	}
}

func TestColored(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		if got := (Info{Version: tt.version}).Colored(false); got != tt.want {
			t.Errorf("%q: got %q", tt.version, got)
		}
	}
	got := Info{Version: "1.2.3"}.Colored(true)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes, got %q", got)
	}
}

func TestWritePretty(t *testing.T) {
	var buf bytes.Buffer
	info := Info{Tool: "cssvalue", Version: "1.0.0", GitCommit: "deadbeef"}
	if err := info.WritePretty(&buf, false); err != nil {
		t.Fatal(err)
	}
	want := "cssvalue 1.0.0\ncommit: deadbeef\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}
