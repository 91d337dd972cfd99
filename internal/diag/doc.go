// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lexer and parser passes.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any IO or CLI integration. Rendering lives in
// internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – ordered enum Info < Warning < Error.
//   - Code – compact numeric identifier (see codes.go) with stable string form
//     (LEX1002, SYN2001, IO4001).
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// Phases receive a diag.Reporter. The parser calls Reporter.Report directly;
// callers that need notes use ReportError(...).WithNote(...).Emit().
// diag.BagReporter aggregates diagnostics into a Bag, which supports a size
// limit, sorting and deduplication. DedupReporter drops repeated reports.
package diag
