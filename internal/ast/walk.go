package ast

// Visitor is called for every node reached by Walk. If Visit returns a
// non-nil visitor w, Walk visits the children of n with w and then calls
// w.Visit(nil).
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n in depth-first order. A nil n, like
// an absent list element, is skipped without calling v.
func Walk(v Visitor, n Node) {
	if n == nil {
		return
	}
	if v = v.Visit(n); v == nil {
		return
	}
	switch x := n.(type) {
	case *Numeric, *String:
		// листья
	case *List:
		for _, e := range x.Elems {
			Walk(v, e)
		}
	default:
		panic("ast.Walk: unexpected node type")
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls f for every node of the tree; f(nil) follows the children
// of each node whose call returned true.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Depth returns the maximum bracket nesting of n; scalars have depth 0.
func Depth(n Node) int {
	l, ok := n.(*List)
	if !ok {
		return 0
	}
	maxChild := 0
	for _, e := range l.Elems {
		if d := Depth(e); d > maxChild {
			maxChild = d
		}
	}
	return maxChild + 1
}
