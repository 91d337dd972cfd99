package token

import (
	"fmt"

	"appian/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

func (t Token) String() string {
	if t.Kind == Word {
		return fmt.Sprintf("Word(%q)", t.Text)
	}
	return t.Kind.String()
}
