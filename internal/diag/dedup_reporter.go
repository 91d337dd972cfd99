package diag

import "appian/internal/source"

// DedupReporter forwards each (code, severity, span, message) once;
// notes of a repeated report are dropped with it.
type DedupReporter struct {
	next Reporter
	seen map[reportKey]bool
}

type reportKey struct {
	Code
	Severity
	source.Span
	msg string
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: map[reportKey]bool{}}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	k := reportKey{code, sev, primary, msg}
	if r.seen[k] || r.next == nil {
		return
	}
	r.seen[k] = true
	r.next.Report(code, sev, primary, msg, notes)
}
