// Package trace records begin/end spans and instant points for the load,
// tokenize and parse passes.
//
// Every event carries the Level at which it becomes visible: pass spans are
// LevelPhase, per-file spans and points are LevelDetail. A Tracer lives in a
// context.Context together with the current parent span:
//
//	ctx = trace.WithTracer(ctx, tr)
//	sp := trace.Begin(trace.FromContext(ctx), trace.LevelPhase, "parse", trace.ParentSpan(ctx))
//	defer sp.End("")
package trace
