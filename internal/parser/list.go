package parser

import (
	"appian/internal/ast"
	"appian/internal/diag"
	"appian/internal/token"
)

// parseList собирает элементы после открывающей '{'. Список получается,
// только если разобраны все элементы; иначе возвращается первая ошибка.
func (p *Parser) parseList(open token.Token, toks []token.Token) (ast.Node, []token.Token, error) {
	if p.depth >= p.opts.maxDepth() {
		err := p.fail(diag.SynNestingTooDeep, &DepthError{Open: open.Span, Max: p.opts.maxDepth()})
		return nil, skipGroup(toks), err
	}
	p.depth++
	defer func() { p.depth-- }()

	var (
		elems []ast.Node
		first error
	)
	record := func(err error) {
		if first == nil {
			first = err
		}
	}

	if len(toks) > 0 && toks[0].Kind == token.CloseObject {
		return ast.NewList(nil, open.Span.Cover(toks[0].Span)), toks[1:], nil
	}

	rest := toks
	expectElem := true
	for {
		if len(rest) == 0 {
			record(p.fail(diag.SynUnterminatedList, &UnterminatedListError{Open: open.Span}))
			return nil, nil, first
		}

		if expectElem {
			expectElem = false
			if rest[0].Kind == token.CloseObject {
				// '{1,}': пустой элемент, скобку оставляем для закрытия списка
				record(p.fail(diag.SynUnexpectedToken, &UnexpectedTokenError{Token: rest[0]}))
				continue
			}
			var (
				node ast.Node
				err  error
			)
			node, rest, err = p.parseExpression(rest)
			if err != nil {
				record(err)
			} else {
				elems = append(elems, node)
			}
			continue
		}

		switch rest[0].Kind {
		case token.CloseObject:
			if first != nil {
				return nil, rest[1:], first
			}
			return ast.NewList(elems, open.Span.Cover(rest[0].Span)), rest[1:], nil
		case token.LineSeparator:
			rest = rest[1:]
			expectElem = true
		default:
			record(p.fail(diag.SynExpectSeparator, &UnexpectedTokenError{Token: rest[0]}))
			return nil, skipGroup(rest), first
		}
	}
}

// skipGroup пропускает токены до парной '}' текущего уровня включительно.
// Если её нет, возвращает пустой хвост.
func skipGroup(toks []token.Token) []token.Token {
	level := 0
	for i, t := range toks {
		switch t.Kind {
		case token.OpenObject:
			level++
		case token.CloseObject:
			if level == 0 {
				return toks[i+1:]
			}
			level--
		}
	}
	return nil
}
