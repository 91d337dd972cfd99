package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin("load")
	tm.End(load, "2 files")
	parse := tm.Begin("parse")
	sub := tm.Begin("parse/a.appian")
	tm.End(sub, "")
	tm.End(parse, "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(r.Phases))
	}
	if r.Phases[0].Note != "2 files" {
		t.Errorf("note = %q", r.Phases[0].Note)
	}
	top := r.Phases[0].DurationMS + r.Phases[1].DurationMS
	if diff := r.TotalMS - top; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("total %v must count top-level phases only (%v)", r.TotalMS, top)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("tokenize")
	time.Sleep(time.Millisecond)
	tm.End(idx, "12 tokens")

	s := tm.Summary()
	for _, want := range []string{"timings:", "tokenize", "// 12 tokens", "total"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary missing %q:\n%s", want, s)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer report = %+v", r)
	}
}
