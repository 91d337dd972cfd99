package trace

import "context"

type ctxKey struct{}

// ctxState: трейсер и текущий родительский спан едут вместе.
type ctxState struct {
	t      Tracer
	parent uint64
}

func state(ctx context.Context) ctxState {
	if ctx != nil {
		if st, ok := ctx.Value(ctxKey{}).(ctxState); ok {
			return st
		}
	}
	return ctxState{t: Nop}
}

// WithTracer attaches t to ctx; nil means Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	st := state(ctx)
	st.t = t
	return context.WithValue(ctx, ctxKey{}, st)
}

// FromContext returns the attached tracer or Nop.
func FromContext(ctx context.Context) Tracer { return state(ctx).t }

// WithSpan makes sp the parent for spans begun from the returned context.
func WithSpan(ctx context.Context, sp *Span) context.Context {
	st := state(ctx)
	st.parent = sp.ID()
	return context.WithValue(ctx, ctxKey{}, st)
}

// ParentSpan is the id stored by WithSpan, 0 if none.
func ParentSpan(ctx context.Context) uint64 { return state(ctx).parent }
