package trace

import (
	"io"
	"sync"
	"time"
)

// StreamTracer writes every accepted event immediately.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	start  time.Time
	owned  bool // w was opened by New
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format, start: time.Now()}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	var data []byte
	if t.format == FormatNDJSON {
		data = formatNDJSON(ev)
	} else {
		data = formatText(ev, ev.Time.Sub(t.start))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	// трассировка не должна ронять форматирование
	_, _ = t.w.Write(data) //nolint:errcheck
}

func (t *StreamTracer) Flush() error {
	if f, ok := t.w.(interface{ Sync() error }); ok {
		return f.Sync()
	}
	return nil
}

func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if c, ok := t.w.(io.Closer); ok && t.owned {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }

// Recorder keeps events in memory. Tests and the --timings summary read
// them back with Events.
type Recorder struct {
	mu     sync.Mutex
	level  Level
	events []Event
}

func NewRecorder(level Level) *Recorder {
	return &Recorder{level: level}
}

func (r *Recorder) Emit(ev *Event) {
	if !r.level.ShouldEmit(ev.Scope) {
		return
	}
	r.mu.Lock()
	r.events = append(r.events, *ev)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Flush() error  { return nil }
func (r *Recorder) Close() error  { return nil }
func (r *Recorder) Level() Level  { return r.level }
func (r *Recorder) Enabled() bool { return r.level > LevelOff }
