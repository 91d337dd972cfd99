package ast_test

import (
	"testing"

	"appian/internal/ast"
	"appian/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{Start: start, End: end}
}

func sample() ast.Node {
	// {"toto",{12,12.2},{}}
	return ast.NewList([]ast.Node{
		ast.NewString("toto", sp(1, 7)),
		ast.NewList([]ast.Node{
			ast.NewInteger(12, sp(9, 11)),
			ast.NewDecimal(12.2, sp(12, 16)),
		}, sp(8, 17)),
		ast.NewList(nil, sp(18, 20)),
	}, sp(0, 21))
}

func TestDump(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{ast.NewInteger(12, sp(0, 2)), "Integer(12)"},
		{ast.NewInteger(-7, sp(0, 2)), "Integer(-7)"},
		{ast.NewDecimal(12.24, sp(0, 5)), "Decimal(12.24)"},
		{ast.NewString("to\"to", sp(0, 7)), `String("to\"to")`},
		{ast.NewList(nil, sp(0, 2)), "List([])"},
		{sample(), `List([String("toto"), List([Integer(12), Decimal(12.2)]), List([])])`},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := ast.Dump(tt.node); got != tt.want {
			t.Errorf("Dump = %s, want %s", got, tt.want)
		}
	}
}

func TestNewListNeverNil(t *testing.T) {
	l := ast.NewList(nil, sp(0, 2))
	if l.Elems == nil {
		t.Fatal("empty list must have a non-nil element slice")
	}
}

func TestInspectOrder(t *testing.T) {
	var kinds []string
	ast.Inspect(sample(), func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, ast.Kind(n))
		}
		return true
	})
	want := []string{"List", "String", "List", "Numeric", "Numeric", "List"}
	if len(kinds) != len(want) {
		t.Fatalf("visited %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("visited %v, want %v", kinds, want)
		}
	}
}

func TestInspectPrune(t *testing.T) {
	count := 0
	ast.Inspect(sample(), func(n ast.Node) bool {
		if n == nil {
			return false
		}
		count++
		// не спускаемся во вложенные списки
		return count == 1
	})
	if count != 4 {
		t.Fatalf("visited %d nodes, want 4", count)
	}
}

func TestInspectSkipsNil(t *testing.T) {
	calls := 0
	ast.Inspect(nil, func(ast.Node) bool { calls++; return true })
	if calls != 0 {
		t.Fatalf("Inspect(nil) made %d calls", calls)
	}

	l := ast.NewList([]ast.Node{nil, ast.NewInteger(1, sp(2, 3))}, sp(0, 4))
	var kinds []string
	ast.Inspect(l, func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, ast.Kind(n))
		}
		return true
	})
	if len(kinds) != 2 || kinds[0] != "List" || kinds[1] != "Numeric" {
		t.Fatalf("visited %v", kinds)
	}
	if d := ast.Depth(nil); d != 0 {
		t.Errorf("nil depth = %d", d)
	}
}

func TestDepth(t *testing.T) {
	if d := ast.Depth(ast.NewInteger(1, sp(0, 1))); d != 0 {
		t.Errorf("scalar depth = %d", d)
	}
	if d := ast.Depth(sample()); d != 2 {
		t.Errorf("sample depth = %d, want 2", d)
	}
}

func TestSpans(t *testing.T) {
	root := sample()
	ast.Inspect(root, func(n ast.Node) bool {
		if n != nil && !root.Span().Contains(n.Span()) {
			t.Errorf("%s span %v outside root %v", ast.Kind(n), n.Span(), root.Span())
		}
		return true
	})
}
