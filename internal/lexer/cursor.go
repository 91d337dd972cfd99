package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"appian/internal/source"
)

// Cursor представляет собой позицию в файле
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek читает текущую руну без продвижения курсора.
// На EOF возвращает utf8.RuneError и size 0; битый UTF-8 даёт RuneError с size 1.
func (c *Cursor) Peek() (r rune, size int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
}

// Bump перемещает курсор на одну руну вперед и возвращает её
func (c *Cursor) Bump() rune {
	r, size := c.Peek()
	if size == 0 {
		return utf8.RuneError
	}
	// size не больше utf8.UTFMax
	c.Off += uint32(size)
	return r
}

// Eat consumes the next rune if it matches r.
func (c *Cursor) Eat(r rune) bool {
	got, size := c.Peek()
	if size == 0 || got != r {
		return false
	}
	c.Off += uint32(size)
	return true
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// SkipToEnd moves the cursor to the end of input.
func (c *Cursor) SkipToEnd() {
	c.Off = c.Limit
}
