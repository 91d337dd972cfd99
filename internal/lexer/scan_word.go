package lexer

import (
	"appian/internal/source"
	"appian/internal/token"
)

// scanWord collects a bare word starting at a non-space, non-punctuation rune.
// Only the seven reserved characters end a word; what happens to embedded
// whitespace depends on Options.WordSpacing.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	lastSolid := lx.cursor.Off
	for {
		r, size := lx.cursor.Peek()
		if size == 0 || token.IsReserved(r) {
			break
		}
		if isSpace(r) {
			if lx.opts.WordSpacing == SpacingSplit {
				break
			}
			lx.cursor.Bump()
		} else {
			lx.cursor.Bump()
			lastSolid = lx.cursor.Off
		}
		// в режиме trim хвостовые пробелы в токен не попадут и в лимит не считаются
		emitted := lx.cursor.Off
		if lx.opts.WordSpacing == SpacingTrim {
			emitted = lastSolid
		}
		if emitted-uint32(start) > maxTokenLength {
			return lx.tooLong(start)
		}
	}

	end := lx.cursor.Off
	if lx.opts.WordSpacing == SpacingTrim {
		// хвостовые пробелы уже съедены, но в токен не входят
		end = lastSolid
	}
	sp := source.Span{File: lx.file.ID, Start: uint32(start), End: end}
	return token.Token{Kind: token.Word, Span: sp, Text: lx.file.Text(sp)}
}
