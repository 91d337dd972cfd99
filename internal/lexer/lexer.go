package lexer

import (
	"appian/internal/diag"
	"appian/internal/source"
	"appian/internal/token"
)

// maxTokenLength bounds a single word or string literal, in bytes.
const maxTokenLength = 1 << 20

// state: режим лексера. Переходы: basic → collecting → collected → basic.
type state uint8

const (
	stateBasic state = iota
	stateCollectingString
	stateCollectedString
)

func (s state) String() string {
	switch s {
	case stateBasic:
		return "Basic"
	case stateCollectingString:
		return "CollectingStringLiteral"
	case stateCollectedString:
		return "CollectedStringLiteral"
	}
	return "unknown"
}

// Lexer is a single-pass, pull-based tokenizer over one source.File.
// It is not restartable: once EOF has been returned every further call
// returns EOF again.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	state  state
	lit    Mark         // начало текущего строкового литерала (открывающая кавычка)
	look   *token.Token // 1 элементный буфер для токена
	done   bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		state:  stateBasic,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done {
		return lx.eof()
	}

	switch lx.state {
	case stateCollectingString:
		return lx.scanStringContent()
	case stateCollectedString:
		return lx.scanStringClose()
	}

	lx.skipSpace()
	if lx.cursor.EOF() {
		return lx.eof()
	}

	start := lx.cursor.Mark()
	r, _ := lx.cursor.Peek()
	if kind, ok := token.LookupPunct(r); ok {
		lx.cursor.Bump()
		if kind == token.StringLiteralSeparator {
			lx.lit = start
			lx.state = stateCollectingString
		}
		return lx.makeToken(kind, start)
	}
	return lx.scanWord()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokens drains the lexer and returns every token before EOF.
func (lx *Lexer) Tokens() []token.Token {
	var out []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) eof() token.Token {
	lx.done = true
	return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
}

func (lx *Lexer) makeToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}
}

func (lx *Lexer) skipSpace() {
	for {
		r, size := lx.cursor.Peek()
		if size == 0 || !isSpace(r) {
			return
		}
		lx.cursor.Bump()
	}
}

// tooLong reports an oversized token and stops lexing.
func (lx *Lexer) tooLong(start Mark) token.Token {
	sp := source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(start) + maxTokenLength}
	lx.errLex(diag.LexTokenTooLong, sp, "token exceeds maximum length")
	lx.cursor.SkipToEnd()
	lx.state = stateBasic
	lx.done = true
	return token.Token{Kind: token.Invalid, Span: sp}
}
