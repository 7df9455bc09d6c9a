package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "3 entries")
	tm.Record("verify", 2*time.Millisecond, "")
	tm.End(42, "ignored")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %+v", rep)
	}
	if rep.Phases[0].Name != "parse" || rep.Phases[0].Note != "3 entries" {
		t.Errorf("first phase = %+v", rep.Phases[0])
	}
	if rep.Phases[1].DurationMS != 2 {
		t.Errorf("recorded phase = %+v", rep.Phases[1])
	}
	if rep.TotalMS < 2 {
		t.Errorf("total %v must include recorded phases", rep.TotalMS)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:\n", "parse", "// 3 entries", "verify", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary lacks %q:\n%s", want, sum)
		}
	}
}

func TestEmptyTimer(t *testing.T) {
	rep := NewTimer().Report()
	if rep.TotalMS != 0 || rep.Phases != nil {
		t.Fatalf("empty timer report = %+v", rep)
	}
}
