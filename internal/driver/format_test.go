package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/7even/clj-sculptor/internal/observ"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/project"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestFormatPathsRewritesFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/a.clj":  "(def x 1)",
		"src/b.cljs": "(def y\n  2)\n",
	})
	timer := observ.NewTimer()
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Jobs: 2, Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.Path, r.Err)
		}
	}
	if !results[0].Changed || results[1].Changed {
		t.Errorf("changed flags = %v/%v, want true/false", results[0].Changed, results[1].Changed)
	}
	if got := readFile(t, filepath.Join(root, "src", "a.clj")); got != "(def x\n  1)\n" {
		t.Errorf("a.clj = %q", got)
	}
	if len(timer.Report().Phases) == 0 {
		t.Error("timer recorded no phases")
	}
}

func TestFormatPathsCheckAndDiff(t *testing.T) {
	root := writeTree(t, map[string]string{"a.clj": "(def x 1)\n"})
	path := filepath.Join(root, "a.clj")

	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Check: true, Diff: true})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	if !r.Changed {
		t.Fatal("expected a.clj to need formatting")
	}
	if got := readFile(t, path); got != "(def x 1)\n" {
		t.Errorf("check mode modified the file: %q", got)
	}
	want := "--- a/" + path + "\n+++ b/" + path + "\n" +
		"@@ -1 +1,2 @@\n" +
		"-(def x 1)\n" +
		"+(def x\n" +
		"+  1)\n"
	if diff := cmp.Diff(want, r.Diff); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	root := writeTree(t, map[string]string{"a.clj": "[1\n  2]"})
	path := filepath.Join(root, "a.clj")
	results, err := FormatPaths(context.Background(), []string{path}, FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(results[0].Formatted); got != "[1\n 2]\n" {
		t.Errorf("formatted = %q", got)
	}
	if got := readFile(t, path); got != "[1\n  2]" {
		t.Errorf("stdout mode modified the file: %q", got)
	}
}

func TestFormatPathsSyntaxError(t *testing.T) {
	root := writeTree(t, map[string]string{"bad.clj": "(def x)\n  )"})
	results, err := FormatPaths(context.Background(), []string{root}, FormatOptions{})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	var se *parser.SyntaxError
	if !errors.As(r.Err, &se) {
		t.Fatalf("error = %v, want *parser.SyntaxError", r.Err)
	}
	if se.Line != 2 {
		t.Errorf("syntax error line = %d, want 2", se.Line)
	}
	if r.Bag == nil || !r.Bag.HasErrors() || r.FileSet == nil {
		t.Error("syntax errors should carry diagnostics")
	}
	if got := readFile(t, filepath.Join(root, "bad.clj")); got != "(def x)\n  )" {
		t.Errorf("file with syntax error was modified: %q", got)
	}
}

func TestFormatPathsNoFiles(t *testing.T) {
	root := writeTree(t, map[string]string{"README.md": "# hi"})
	if _, err := FormatPaths(context.Background(), []string{root}, FormatOptions{}); !errors.Is(err, ErrNoFiles) {
		t.Errorf("err = %v, want ErrNoFiles", err)
	}
}

func TestFormatPathsCancelled(t *testing.T) {
	root := writeTree(t, map[string]string{"a.clj": "(def x 1)"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := FormatPaths(ctx, []string{root}, FormatOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if got := readFile(t, filepath.Join(root, "a.clj")); got != "(def x 1)" {
		t.Errorf("cancelled run modified the file: %q", got)
	}
}

func TestCollectFiles(t *testing.T) {
	root := writeTree(t, map[string]string{
		"src/core.clj":          "",
		"src/core.cljc":         "",
		"src/gen.generated.clj": "",
		"resources/data.edn":    "",
		"target/out.clj":        "",
		".git/hooks.clj":        "",
		"notes.txt":             "",
	})
	cfg := project.Default()
	cfg.Root = root
	cfg.Format.Exclude = []string{"target/", "*.generated.clj"}

	files, err := CollectFiles(context.Background(), []string{root, filepath.Join(root, "notes.txt")}, &cfg)
	if err != nil {
		t.Fatal(err)
	}
	var rel []string
	for _, f := range files {
		r, _ := filepath.Rel(root, f)
		rel = append(rel, filepath.ToSlash(r))
	}
	want := []string{"notes.txt", "resources/data.edn", "src/core.clj", "src/core.cljc"}
	if diff := cmp.Diff(want, rel); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func TestProgressEvents(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.clj": "(def x 1)",
		"b.clj": "(def",
	})
	sink := &recordingSink{}
	if _, err := FormatPaths(context.Background(), []string{root}, FormatOptions{Progress: sink}); err != nil {
		t.Fatal(err)
	}

	final := make(map[string]Status)
	queued := 0
	for _, ev := range sink.events {
		if ev.Status == StatusQueued {
			queued++
		}
		final[filepath.Base(ev.File)] = ev.Status
	}
	if queued != 2 {
		t.Errorf("queued events = %d, want 2", queued)
	}
	want := map[string]Status{"a.clj": StatusDone, "b.clj": StatusError}
	if diff := cmp.Diff(want, final); diff != "" {
		t.Errorf("final statuses mismatch (-want +got):\n%s", diff)
	}
}

func TestChannelSink(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "a.clj", Stage: StageParse, Status: StatusWorking})
	if ev := <-ch; ev.File != "a.clj" || ev.Stage != StageParse {
		t.Errorf("unexpected event %+v", ev)
	}
	ChannelSink{}.OnEvent(Event{}) // nil channel is a no-op
}

func TestFormatBytesEmptyInput(t *testing.T) {
	r := FormatBytes(context.Background(), "empty.clj", []byte("\n\n"), FormatOptions{Stdout: true})
	if r.Err != nil {
		t.Fatal(r.Err)
	}
	if !r.Changed || len(r.Formatted) != 0 {
		t.Errorf("blank file should format to nothing, got %q (changed=%v)", r.Formatted, r.Changed)
	}
}

func TestUnifiedDiffHunks(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < 20; i++ {
		line := string(rune('a'+i)) + "\n"
		before.WriteString(line)
		switch i {
		case 1:
			after.WriteString("B\n")
		case 17:
			after.WriteString("R\n")
		default:
			after.WriteString(line)
		}
	}
	got := UnifiedDiff("x.clj", before.String(), after.String())
	want := "--- a/x.clj\n+++ b/x.clj\n" +
		"@@ -1,5 +1,5 @@\n a\n-b\n+B\n c\n d\n e\n" +
		"@@ -15,6 +15,6 @@\n o\n p\n q\n-r\n+R\n s\n t\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnifiedDiff mismatch (-want +got):\n%s", diff)
	}
	if UnifiedDiff("x.clj", "same", "same") != "" {
		t.Error("equal inputs should produce no diff")
	}
}

func TestUnifiedDiffNoFinalNewline(t *testing.T) {
	got := UnifiedDiff("x.clj", "(a)", "(a)\n")
	want := "--- a/x.clj\n+++ b/x.clj\n@@ -1 +1 @@\n-(a)\n\\ No newline at end of file\n+(a)\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnifiedDiff mismatch (-want +got):\n%s", diff)
	}
}
