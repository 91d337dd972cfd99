package ast

import "appian/internal/source"

// NewInteger, NewDecimal, NewString and NewList build nodes; used by the
// parser and handy in tests.

func NewInteger(v int64, sp source.Span) *Numeric {
	return &Numeric{Value: Integer(v), Pos: sp}
}

func NewDecimal(v float64, sp source.Span) *Numeric {
	return &Numeric{Value: Decimal(v), Pos: sp}
}

func NewString(v string, sp source.Span) *String {
	return &String{Value: v, Pos: sp}
}

func NewList(elems []Node, sp source.Span) *List {
	if elems == nil {
		elems = []Node{}
	}
	return &List{Elems: elems, Pos: sp}
}
