package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/7even/clj-sculptor/internal/driver"
)

func TestApplyEventTracksStatus(t *testing.T) {
	m := NewProgressModel("formatting", []string{"a.clj", "b.clj"}, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.clj", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.clj", Stage: driver.StageWrite, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "unknown.clj", Stage: driver.StageRead, Status: driver.StatusDone})

	if got := m.items[0].status; got != "parsing" {
		t.Errorf("a.clj status = %q, want parsing", got)
	}
	if got := m.items[1]; got.status != "error" || !got.final {
		t.Errorf("b.clj = %+v, want final error", got)
	}

	view := m.View()
	if !strings.Contains(view, "formatting 1/2") {
		t.Errorf("header missing counts:\n%s", view)
	}
	for _, want := range []string{"a.clj", "b.clj", "parsing", "error"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestVisibleRowsCapped(t *testing.T) {
	files := make([]string, 30)
	for i := range files {
		files[i] = fmt.Sprintf("src/f%02d.clj", i)
	}
	m := NewProgressModel("formatting", files, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "src/f29.clj", Stage: driver.StageRender, Status: driver.StatusWorking})

	rows := m.visibleRows()
	if len(rows) != maxRows {
		t.Fatalf("got %d rows, want %d", len(rows), maxRows)
	}
	if rows[0].path != "src/f29.clj" {
		t.Errorf("in-flight file should be listed first, got %q", rows[0].path)
	}
	if !strings.Contains(m.View(), "18 more") {
		t.Error("hidden files are not summarised")
	}
}

func TestTruncateKeepsTail(t *testing.T) {
	long := "very/long/directory/structure/leading/to/core.clj"
	got := truncate(long, 20)
	if runewidth.StringWidth(got) != 20 {
		t.Errorf("truncate width = %d, want 20 (%q)", runewidth.StringWidth(got), got)
	}
	if !strings.HasPrefix(got, "...") || !strings.HasSuffix(got, "core.clj") {
		t.Errorf("truncate = %q, want a ... prefix and the file name kept", got)
	}
	if truncate("short.clj", 20) != "short.clj" {
		t.Error("short paths must stay intact")
	}
}
