package lexer

import (
	"testing"
	"unicode/utf8"

	"appian/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.appian", []byte(content))
	return fs.Get(id)
}

func TestCursorRunes(t *testing.T) {
	cursor := NewCursor(createFile("aé\n"))

	if r := cursor.Bump(); r != 'a' {
		t.Fatalf("Bump = %q, want 'a'", r)
	}
	r, size := cursor.Peek()
	if r != 'é' || size != 2 {
		t.Fatalf("Peek = %q/%d, want 'é'/2", r, size)
	}
	cursor.Bump()
	if cursor.Off != 3 {
		t.Fatalf("Off = %d, want 3", cursor.Off)
	}
	if !cursor.Eat('\n') || !cursor.EOF() {
		t.Fatalf("expected to eat newline and reach EOF")
	}
	if r, size := cursor.Peek(); r != utf8.RuneError || size != 0 {
		t.Fatalf("Peek at EOF = %q/%d", r, size)
	}
	if cursor.Bump() != utf8.RuneError {
		t.Fatalf("Bump at EOF must return RuneError")
	}
}

func TestCursorMarkAndReset(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	m := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset: Off = %d", cursor.Off)
	}
	if cursor.Eat('x') {
		t.Fatalf("Eat must not consume a different rune")
	}
	cursor.SkipToEnd()
	if !cursor.EOF() {
		t.Fatalf("SkipToEnd must reach EOF")
	}
}
