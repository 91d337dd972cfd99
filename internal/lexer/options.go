package lexer

import (
	"fmt"
	"strings"

	"appian/internal/diag"
	"appian/internal/source"
)

// WordSpacing decides what happens to whitespace met inside a bare word.
type WordSpacing uint8

const (
	// SpacingTrim keeps interior whitespace but leaves trailing whitespace out
	// of the token. This is the default.
	SpacingTrim WordSpacing = iota
	// SpacingKeep keeps every whitespace character up to the terminating
	// punctuation, trailing whitespace included.
	SpacingKeep
	// SpacingSplit ends the word at the first whitespace character.
	SpacingSplit
)

func (s WordSpacing) String() string {
	switch s {
	case SpacingTrim:
		return "trim"
	case SpacingKeep:
		return "keep"
	case SpacingSplit:
		return "split"
	}
	return "unknown"
}

// ParseWordSpacing converts a flag or manifest value to WordSpacing.
func ParseWordSpacing(s string) (WordSpacing, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "trim":
		return SpacingTrim, nil
	case "keep":
		return SpacingKeep, nil
	case "split":
		return SpacingSplit, nil
	default:
		return SpacingTrim, fmt.Errorf("invalid word spacing: %q (expected: keep|trim|split)", s)
	}
}

type Options struct {
	Reporter    diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
	WordSpacing WordSpacing
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
