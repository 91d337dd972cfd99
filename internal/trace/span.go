package trace

import "time"

// Span is an open Begin awaiting its End. A Span from a tracer that does not
// want its level is inert: End and Set do nothing, ID is 0.
type Span struct {
	t      Tracer
	lvl    Level
	id     uint64
	parent uint64
	name   string
	attrs  []Attr
}

// Begin emits a begin event for name under parent (0 for a root span).
func Begin(t Tracer, lvl Level, name string, parent uint64) *Span {
	if !wants(t, lvl) {
		return &Span{}
	}
	sp := &Span{t: t, lvl: lvl, id: next(), parent: parent, name: name}
	t.Emit(Event{
		Seq: next(), Time: time.Now(), Kind: KindBegin, Level: lvl,
		ID: sp.id, Parent: parent, Name: name,
	})
	return sp
}

// Set records an attribute for the end event; attributes keep their order.
func (s *Span) Set(key, value string) *Span {
	if s.t != nil {
		s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	}
	return s
}

// End emits the end event with an optional detail.
func (s *Span) End(detail string) {
	if s.t == nil {
		return
	}
	s.t.Emit(Event{
		Seq: next(), Time: time.Now(), Kind: KindEnd, Level: s.lvl,
		ID: s.id, Parent: s.parent, Name: s.name, Detail: detail, Attrs: s.attrs,
	})
	s.t = nil
}

// ID is the span id to pass as parent, 0 for an inert span.
func (s *Span) ID() uint64 { return s.id }

// Point emits a detail-level instant event.
func Point(t Tracer, name, detail string, parent uint64) {
	point(t, name, detail, parent, false)
}

// Fault is Point marked as a failure.
func Fault(t Tracer, name, detail string, parent uint64) {
	point(t, name, detail, parent, true)
}

func point(t Tracer, name, detail string, parent uint64, failed bool) {
	if !wants(t, LevelDetail) {
		return
	}
	t.Emit(Event{
		Seq: next(), Time: time.Now(), Kind: KindPoint, Level: LevelDetail,
		Parent: parent, Name: name, Detail: detail, Err: failed,
	})
}
