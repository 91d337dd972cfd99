package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v, want 1:2-8", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Errorf("spans from different files must not merge")
	}
}

func TestSpanContains(t *testing.T) {
	outer := Span{File: 0, Start: 0, End: 10}
	if !outer.Contains(Span{File: 0, Start: 3, End: 10}) {
		t.Error("expected containment")
	}
	if outer.Contains(Span{File: 0, Start: 3, End: 11}) {
		t.Error("span past the end must not be contained")
	}
	if outer.Contains(Span{File: 1, Start: 3, End: 4}) {
		t.Error("span from another file must not be contained")
	}
	if !(Span{Start: 5, End: 5}).Empty() || (Span{Start: 5, End: 6}).Len() != 1 {
		t.Error("Empty/Len mismatch")
	}
}
