package lexer

import (
	"appian/internal/diag"
	"appian/internal/token"
)

// scanStringContent собирает всё до следующей '"' (не включая) в один Word.
// Escape-последовательностей нет: содержимое берётся как есть, может быть пустым.
func (lx *Lexer) scanStringContent() token.Token {
	start := lx.cursor.Mark()
	for {
		r, size := lx.cursor.Peek()
		if size == 0 || r == '"' {
			break
		}
		lx.cursor.Bump()
		if lx.cursor.Off-uint32(start) > maxTokenLength {
			return lx.tooLong(start)
		}
	}
	lx.state = stateCollectedString
	return lx.makeToken(token.Word, start)
}

// scanStringClose emits the closing separator, or reports an unterminated
// literal when input ran out before it.
func (lx *Lexer) scanStringClose() token.Token {
	start := lx.cursor.Mark()
	lx.state = stateBasic
	if lx.cursor.Eat('"') {
		return lx.makeToken(token.StringLiteralSeparator, start)
	}

	// EOF без закрывающей кавычки
	tok := lx.makeToken(token.Invalid, lx.lit)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	lx.done = true
	return tok
}
