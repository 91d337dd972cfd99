package parser

import (
	"errors"

	"appian/internal/ast"
	"appian/internal/diag"
	"appian/internal/lexer"
	"appian/internal/source"
	"appian/internal/token"
)

// Expr is the outcome of parsing one top-level expression.
// Node is nil exactly when Err is set.
type Expr struct {
	Node ast.Node
	Err  error
}

type Result struct {
	Exprs []Expr
}

// Nodes returns the successfully parsed expressions in source order.
func (r Result) Nodes() []ast.Node {
	out := make([]ast.Node, 0, len(r.Exprs))
	for _, e := range r.Exprs {
		if e.Node != nil {
			out = append(out, e.Node)
		}
	}
	return out
}

// Err joins the errors of all failed expressions, nil when none failed.
func (r Result) Err() error {
	var errs []error
	for _, e := range r.Exprs {
		if e.Err != nil {
			errs = append(errs, e.Err)
		}
	}
	return errors.Join(errs...)
}

// Parser хранит состояние разбора одного потока токенов
type Parser struct {
	opts  Options
	depth int // текущая вложенность списков
}

// ParseTokens parses expressions until the tokens run out. Top-level
// expressions need no separator between them. A trailing EOF is ignored.
func ParseTokens(tokens []token.Token, opts Options) Result {
	if n := len(tokens); n > 0 && tokens[n-1].Kind == token.EOF {
		tokens = tokens[:n-1]
	}
	p := Parser{opts: opts}

	var res Result
	for len(tokens) > 0 {
		node, rest, err := p.parseExpression(tokens)
		if err != nil {
			node = nil
		}
		res.Exprs = append(res.Exprs, Expr{Node: node, Err: err})
		tokens = rest
	}
	return res
}

// ParseFile drains lx and parses the resulting tokens.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	return ParseTokens(lx.Tokens(), opts)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil || p.opts.Enough() {
		return false // нет reporter или достигли максимального количества ошибок
	}
	p.opts.CurrentErrors++
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	return true
}

// fail reports err under code and returns it.
func (p *Parser) fail(code diag.Code, err error) error {
	sp, _ := ErrorSpan(err)
	p.report(code, sp, err.Error())
	return err
}
