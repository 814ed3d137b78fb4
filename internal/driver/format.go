package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/7even/clj-sculptor/internal/ast"
	"github.com/7even/clj-sculptor/internal/diag"
	"github.com/7even/clj-sculptor/internal/format"
	"github.com/7even/clj-sculptor/internal/observ"
	"github.com/7even/clj-sculptor/internal/parser"
	"github.com/7even/clj-sculptor/internal/project"
	"github.com/7even/clj-sculptor/internal/source"
	"github.com/7even/clj-sculptor/internal/trace"
)

// ErrNoFiles is returned by FormatPaths when nothing matched.
var ErrNoFiles = errors.New("format: no source files found")

// FormatOptions configures code formatting.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Diff fills FormatResult.Diff and leaves files untouched.
	Diff bool
	// Stdout returns formatted content in the results instead of writing.
	Stdout bool

	Jobs           int // files formatted at once; <= 0 means GOMAXPROCS
	RenderJobs     int // forwarded to format.Options.Jobs
	MaxDiagnostics int

	Config   *project.Config
	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

func (o FormatOptions) writes() bool {
	return !o.Check && !o.Diff && !o.Stdout
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Formatted []byte
	Diff      string

	// FileSet and Bag hold reader diagnostics when Err is a syntax error.
	FileSet *source.FileSet
	Bag     *diag.Bag
}

// FormatPaths formats provided files or directories. Per-file failures are
// reported in FormatResult.Err; the returned error is reserved for walk
// failures and cancellation.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "fmt", trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpan(ctx, span)

	walkIdx := -1
	if opts.Timer != nil {
		walkIdx = opts.Timer.Begin("walk")
	}
	walk := trace.Begin(tracer, trace.ScopePass, "walk", span.ID())
	files, err := CollectFiles(ctx, paths, opts.Config)
	walk.WithExtra("files", strconv.Itoa(len(files))).End("")
	if opts.Timer != nil {
		opts.Timer.End(walkIdx, strconv.Itoa(len(files))+" files")
	}
	if err != nil {
		span.End("walk failed")
		return nil, err
	}
	if len(files) == 0 {
		span.End("no files")
		return nil, ErrNoFiles
	}

	for _, path := range files {
		emit(opts.Progress, path, StageRead, StatusQueued, nil, 0)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = FormatResult{Path: path, Err: err}
				return err
			}
			results[i] = formatFile(gctx, path, opts)
			return nil
		})
	}
	err = g.Wait()
	span.WithExtra("files", strconv.Itoa(len(files))).End("")
	return results, err
}

// formatFile runs one file through read, parse, render and write.
func formatFile(ctx context.Context, path string, opts FormatOptions) FormatResult {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeFile, "file:"+path, trace.CurrentSpan(ctx).SpanID)
	ctx = trace.WithSpan(ctx, span)
	started := time.Now()

	emit(opts.Progress, path, StageRead, StatusWorking, nil, 0)
	readStart := time.Now()
	// #nosec G304 -- path comes from the command line or a directory walk
	data, err := os.ReadFile(path)
	opts.Timer.Add("read", time.Since(readStart))
	if err != nil {
		res := FormatResult{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
		emit(opts.Progress, path, StageRead, StatusError, res.Err, time.Since(started))
		span.End("read failed")
		return res
	}

	res := FormatBytes(ctx, path, data, opts)
	if res.Err == nil && res.Changed && opts.writes() {
		emit(opts.Progress, path, StageWrite, StatusWorking, nil, 0)
		writeStart := time.Now()
		if err := writeFile(path, res.Formatted); err != nil {
			res.Err = fmt.Errorf("write %s: %w", path, err)
		}
		opts.Timer.Add("write", time.Since(writeStart))
	}

	status := StatusDone
	if res.Err != nil {
		status = StatusError
	}
	emit(opts.Progress, path, StageWrite, status, res.Err, time.Since(started))
	span.WithExtra("changed", strconv.FormatBool(res.Changed)).
		WithExtra("cached", strconv.FormatBool(res.Cached)).
		End(string(status))
	return res
}

// FormatBytes formats data read from path without touching the filesystem
// (the cache aside). Formatted always ends with a single newline unless the
// input has no forms at all.
func FormatBytes(ctx context.Context, path string, data []byte, opts FormatOptions) FormatResult {
	res := FormatResult{Path: path}
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID

	key := CacheKey(data)
	var entry CacheEntry
	if ok, err := opts.Cache.Get(key, &entry); ok {
		trace.Point(tracer, trace.ScopeFile, "cache_hit", path, parent)
		res.Cached = true
		res.Changed = !entry.Canonical
		res.Formatted = data
		if res.Changed {
			res.Formatted = entry.Output
		}
		return finish(res, data, opts)
	} else if err != nil {
		trace.Point(tracer, trace.ScopeFile, "cache_error", err.Error(), parent)
	}

	emit(opts.Progress, path, StageParse, StatusWorking, nil, 0)
	parseStart := time.Now()
	pspan := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	fs := source.NewFileSet()
	id := fs.AddNormalized(path, data, 0)
	root, bag := parser.ParseSource(fs, id, opts.MaxDiagnostics)
	pspan.End("")
	opts.Timer.Add("parse", time.Since(parseStart))
	if bag.HasErrors() {
		bag.Sort()
		res.FileSet, res.Bag = fs, bag
		res.Err = parser.ErrorFromBag(fs, bag)
		return res
	}

	emit(opts.Progress, path, StageRender, StatusWorking, nil, 0)
	renderStart := time.Now()
	rspan := trace.Begin(tracer, trace.ScopePass, "render", parent)
	out, err := format.Render(trace.WithSpan(ctx, rspan), root, format.Options{Jobs: opts.RenderJobs})
	rspan.End("")
	opts.Timer.Add("render", time.Since(renderStart))
	if err != nil {
		res.Err = fmt.Errorf("render %s: %w", path, err)
		return res
	}

	res.Formatted = withFinalNewline(ast.Print(out))
	res.Changed = !bytes.Equal(data, res.Formatted)

	cached := &CacheEntry{Canonical: !res.Changed}
	if res.Changed {
		cached.Output = res.Formatted
	}
	if err := opts.Cache.Put(key, cached); err != nil {
		trace.Point(tracer, trace.ScopeFile, "cache_error", err.Error(), parent)
	}
	return finish(res, data, opts)
}

func finish(res FormatResult, data []byte, opts FormatOptions) FormatResult {
	if opts.Diff && res.Changed {
		res.Diff = UnifiedDiff(res.Path, string(data), string(res.Formatted))
	}
	if !opts.Stdout {
		if !opts.writes() || !res.Changed {
			res.Formatted = nil
		}
	}
	return res
}

func withFinalNewline(s string) []byte {
	if s == "" {
		return []byte{}
	}
	return []byte(s + "\n")
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}
