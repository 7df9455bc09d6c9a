// Package trace is the logging channel of cssvalue: levelled, span based
// events that follow a value through tokenizing, parsing and batch checks.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	cssvalue check --trace=- --trace-level=detail ./styles
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a command fails
//   - MultiTracer: fans out to several tracers
//
// # Scopes
//
//   - ScopeDriver: top-level CLI operations
//   - ScopePass: tokenize, parse, check
//   - ScopeFile: per-file work inside a batch
//   - ScopeNode: per-entry events of a value sheet
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", 0)
//	defer span.End("")
package trace
