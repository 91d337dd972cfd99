package parser

import (
	"strconv"
	"strings"

	"appian/internal/ast"
	"appian/internal/diag"
	"appian/internal/token"
)

// parseExpression разбирает одно выражение в начале toks и возвращает
// узел и неразобранный хвост. При ошибке узел nil, а хвост уже сдвинут
// за поглощённые токены.
func (p *Parser) parseExpression(toks []token.Token) (ast.Node, []token.Token, error) {
	if len(toks) == 0 {
		return nil, nil, p.fail(diag.SynUnexpectedToken, &UnexpectedTokenError{Token: token.Token{Kind: token.EOF}})
	}

	tok := toks[0]
	switch tok.Kind {
	case token.Word:
		node, err := p.parseNumber(tok)
		return node, toks[1:], err
	case token.StringLiteralSeparator:
		return p.parseString(toks)
	case token.OpenObject:
		return p.parseList(tok, toks[1:])
	default:
		return nil, toks[1:], p.fail(diag.SynUnexpectedToken, &UnexpectedTokenError{Token: tok})
	}
}

// parseNumber: десятичное число отличается от целого только наличием '.'.
func (p *Parser) parseNumber(tok token.Token) (ast.Node, error) {
	if strings.Contains(tok.Text, ".") {
		if goOnlyFloatSyntax(tok.Text) {
			err := &strconv.NumError{Func: "ParseFloat", Num: tok.Text, Err: strconv.ErrSyntax}
			return nil, p.fail(diag.SynMalformedNumber, &NumberError{Token: tok, Err: err})
		}
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return nil, p.fail(diag.SynMalformedNumber, &NumberError{Token: tok, Err: err})
		}
		return ast.NewDecimal(v, tok.Span), nil
	}
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, p.fail(diag.SynMalformedNumber, &NumberError{Token: tok, Err: err})
	}
	return ast.NewInteger(v, tok.Span), nil
}

// goOnlyFloatSyntax: ParseFloat понимает hex-мантиссу (0x1.8p1) и '_'
// между цифрами, а в нотации это не числа.
func goOnlyFloatSyntax(text string) bool {
	if strings.ContainsRune(text, '_') {
		return true
	}
	digits := strings.TrimLeft(text, "+-")
	return len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X')
}

// parseString ожидает '"' Word '"'.
func (p *Parser) parseString(toks []token.Token) (ast.Node, []token.Token, error) {
	open := toks[0]
	if len(toks) >= 3 && toks[1].Kind == token.Word && toks[2].Kind == token.StringLiteralSeparator {
		return ast.NewString(toks[1].Text, open.Span.Cover(toks[2].Span)), toks[3:], nil
	}

	rest := toks[1:]
	if len(rest) > 0 && rest[0].Kind == token.Word {
		rest = rest[1:]
	}
	// Invalid от лексера помечает этот же незакрытый литерал
	if len(rest) > 0 && rest[0].Kind == token.Invalid {
		rest = rest[1:]
	}
	return nil, rest, p.fail(diag.SynUnterminatedString, &UnterminatedStringError{Open: open.Span})
}
