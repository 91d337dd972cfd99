package ast

import (
	"appian/internal/source"
)

// Node is one parsed expression. The set of implementations is closed:
// *Numeric, *String and *List.
type Node interface {
	Span() source.Span
	node()
}

// Number is the payload of a Numeric node: Integer or Decimal.
type Number interface {
	number()
}

type Integer int64

type Decimal float64

func (Integer) number() {}
func (Decimal) number() {}

// Numeric is a number literal. Words containing '.' become Decimal,
// everything else Integer.
type Numeric struct {
	Value Number
	Pos   source.Span
}

// String is the verbatim content of a quoted literal, quotes excluded.
// Pos covers both quotes.
type String struct {
	Value string
	Pos   source.Span
}

// List is a bracketed sequence. Elements may be of mixed kinds.
// Pos covers the opening and closing brackets.
type List struct {
	Elems []Node
	Pos   source.Span
}

func (n *Numeric) Span() source.Span { return n.Pos }
func (n *String) Span() source.Span  { return n.Pos }
func (n *List) Span() source.Span    { return n.Pos }

func (*Numeric) node() {}
func (*String) node()  {}
func (*List) node()    {}

// Kind returns a short name of the node type.
func Kind(n Node) string {
	switch n.(type) {
	case *Numeric:
		return "Numeric"
	case *String:
		return "String"
	case *List:
		return "List"
	case nil:
		return "<nil>"
	default:
		panic("ast: unexpected node type")
	}
}
