package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"

	"cssvalue/internal/pipeline"
)

func TestApplyEventTracksFiles(t *testing.T) {
	m := newProgressModel("checking", []string{"a.cssv", "b.cssv"}, nil)

	m.applyEvent(pipeline.Event{File: "a.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	if got := m.items[0].status; got != "parsing" {
		t.Fatalf("status = %q, want parsing", got)
	}
	if p := m.percent(); p <= 0 || p >= 0.5 {
		t.Fatalf("percent = %v", p)
	}

	m.applyEvent(pipeline.Event{File: "a.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusDone, Elapsed: time.Millisecond})
	m.applyEvent(pipeline.Event{File: "b.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusError, Err: errors.New("1 of 2 entries failed")})
	if m.finished != 2 || m.failed != 1 {
		t.Fatalf("finished=%d failed=%d", m.finished, m.failed)
	}
	if p := m.percent(); p != 1 {
		t.Fatalf("percent = %v, want 1", p)
	}

	// финальный статус не перезаписывается
	m.applyEvent(pipeline.Event{File: "b.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusWorking})
	if got := m.items[1].status; got != "error" {
		t.Fatalf("status = %q, want error", got)
	}
	if m.finished != 2 {
		t.Fatalf("finished = %d", m.finished)
	}
}

func TestApplyEventBatchLabel(t *testing.T) {
	m := newProgressModel("checking", []string{"a.cssv"}, nil)
	m.applyEvent(pipeline.Event{Stage: pipeline.StageLoad, Status: pipeline.StatusWorking})
	if m.stageLabel != "loading" {
		t.Fatalf("stage label = %q", m.stageLabel)
	}
	m.applyEvent(pipeline.Event{File: "unknown.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusDone})
	if m.finished != 0 {
		t.Fatal("unknown file must be ignored")
	}
}

func TestViewListsFiles(t *testing.T) {
	m := newProgressModel("checking", []string{"a.cssv", "dir/b.cssv"}, nil)
	m.applyEvent(pipeline.Event{File: "a.cssv", Stage: pipeline.StageParse, Status: pipeline.StatusDone})
	m.done = true

	view := m.View()
	for _, want := range []string{"done: checking 1/2", "a.cssv", "dir/b.cssv", "queued"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	got := truncate("very/long/path/to/file.cssv", 12)
	if runewidth.StringWidth(got) > 12 || !strings.HasSuffix(got, "...") {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("got %q", got)
	}
}
