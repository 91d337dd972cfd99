package lexer

import (
	"strings"
	"testing"

	"appian/internal/diag"
	"appian/internal/source"
	"appian/internal/token"
)

func TestTokenTooLongTriggersDiagnosticAndStops(t *testing.T) {
	content := strings.Repeat("a", maxTokenLength+1)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("long.appian", []byte(content)))

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", bag.Items())
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Fatalf("expected EOF after long token, got %v", next.Kind)
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	content := strings.Repeat("b", maxTokenLength)
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("limit.appian", []byte(content)))

	bag := diag.NewBag(1)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	tok := lx.Next()
	if tok.Kind != token.Word {
		t.Fatalf("expected word token, got %v", tok.Kind)
	}
	if bag.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", bag.Items())
	}
}

func TestLongStringLiteral(t *testing.T) {
	content := `"` + strings.Repeat("c", maxTokenLength+1) + `"`
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("longstr.appian", []byte(content)))

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	if tok := lx.Next(); tok.Kind != token.StringLiteralSeparator {
		t.Fatalf("expected opening quote, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", tok.Kind)
	}
}

func TestStateTransitions(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("state.appian", []byte(`"x"`)))
	lx := New(file, Options{})

	steps := []state{stateCollectingString, stateCollectedString, stateBasic}
	for i, want := range steps {
		lx.Next()
		if lx.state != want {
			t.Fatalf("after token %d state = %v, want %v", i, lx.state, want)
		}
	}
}

func TestTrailingWhitespaceNotCountedInTrimMode(t *testing.T) {
	content := "{1" + strings.Repeat(" ", maxTokenLength+1) + "}"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("padded.appian", []byte(content)))

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}, WordSpacing: SpacingTrim})

	want := []token.Kind{token.OpenObject, token.Word, token.CloseObject, token.EOF}
	for i, k := range want {
		tok := lx.Next()
		if tok.Kind != k {
			t.Fatalf("token %d = %v, want %v", i, tok, k)
		}
		if k == token.Word && tok.Text != "1" {
			t.Fatalf("word text = %q, want %q", tok.Text, "1")
		}
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestTrailingWhitespaceCountedInKeepMode(t *testing.T) {
	content := "1" + strings.Repeat(" ", maxTokenLength) + "}"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("kept.appian", []byte(content)))

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}, WordSpacing: SpacingKeep})

	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tok)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", bag.Items())
	}
}
