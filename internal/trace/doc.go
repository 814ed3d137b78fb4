// Package trace records what the formatter is doing: which files it reads,
// which passes run over them and how long each took.
//
// Usage:
//
//	sculptor fmt --trace=- --trace-level=phase src/
//
// Levels gate scopes: phase shows driver and pass spans, detail adds
// per-file spans, debug adds per-form spans. Output is text (default) or
// NDJSON when the trace path ends in .ndjson.
//
// Tracers travel through the driver via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
