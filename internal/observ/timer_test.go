package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerBeginEnd(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("walk")
	tm.End(idx, "3 files")
	tm.End(42, "ignored")

	r := tm.Report()
	if len(r.Phases) != 1 || r.Phases[0].Name != "walk" || r.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected report: %+v", r)
	}
}

func TestTimerAddConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Add("render", time.Millisecond)
		}()
	}
	wg.Wait()

	r := tm.Report()
	if len(r.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(r.Phases))
	}
	p := r.Phases[0]
	if p.Count != 8 || p.DurationMS != 8 {
		t.Errorf("render = %+v, want 8 samples of 1ms", p)
	}
	if r.TotalMS != 0 {
		t.Errorf("accumulated phases must not count towards total, got %v", r.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "x8") {
		t.Errorf("summary missing sample count:\n%s", s)
	}
}
