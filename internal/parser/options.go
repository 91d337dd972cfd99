package parser

import "appian/internal/diag"

// DefaultMaxDepth is the bracket nesting limit used when Options.MaxDepth is zero.
const DefaultMaxDepth = 256

type Options struct {
	// MaxDepth ограничивает вложенность списков (0 значит DefaultMaxDepth).
	MaxDepth      int
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

func (o *Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
