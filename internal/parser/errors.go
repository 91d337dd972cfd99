package parser

import (
	"fmt"
	"strconv"

	"appian/internal/source"
	"appian/internal/token"
)

// NumberError is returned for a bare word that is not a valid number.
// Err is the underlying *strconv.NumError.
type NumberError struct {
	Token token.Token
	Err   error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("malformed number %q: %v", e.Token.Text, e.Err)
}

func (e *NumberError) Unwrap() error { return e.Err }

// UnexpectedTokenError reports a token that cannot start or continue an
// expression at its position.
type UnexpectedTokenError struct {
	Token token.Token
}

func (e *UnexpectedTokenError) Error() string {
	if e.Token.Kind == token.EOF {
		return "unexpected end of input"
	}
	if e.Token.Text == "" {
		// у Invalid от лексера текста нет
		return "unexpected token " + e.Token.Kind.String()
	}
	return "unexpected token " + strconv.Quote(e.Token.Text)
}

// UnterminatedListError means input ended before the closing '}'.
// Open is the span of the opening bracket.
type UnterminatedListError struct {
	Open source.Span
}

func (e *UnterminatedListError) Error() string {
	return "unterminated list"
}

// UnterminatedStringError means a string literal has no closing '"'.
type UnterminatedStringError struct {
	Open source.Span
}

func (e *UnterminatedStringError) Error() string {
	return "unterminated string literal"
}

// DepthError is returned when lists nest deeper than Options.MaxDepth.
type DepthError struct {
	Open source.Span
	Max  int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("lists nested deeper than %d levels", e.Max)
}

// ErrorSpan returns the source position of a parse error.
func ErrorSpan(err error) (source.Span, bool) {
	switch e := err.(type) {
	case *NumberError:
		return e.Token.Span, true
	case *UnexpectedTokenError:
		return e.Token.Span, true
	case *UnterminatedListError:
		return e.Open, true
	case *UnterminatedStringError:
		return e.Open, true
	case *DepthError:
		return e.Open, true
	default:
		return source.Span{}, false
	}
}
