// Package testkit holds invariant checks shared by parser, driver and fuzz tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"appian/internal/ast"
	"appian/internal/parser"
	"appian/internal/source"
	"appian/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parse result:
// 1) every node span is non-empty, points at sf and lies within its content
// 2) every list element lies inside its list
// 3) siblings and top-level expressions do not overlap and keep source order
func CheckSpanInvariants(res parser.Result, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prev source.Span
	havePrev := false
	for i, expr := range res.Exprs {
		if expr.Node == nil {
			if expr.Err == nil {
				return fmt.Errorf("expr %d: neither node nor error", i)
			}
			continue
		}
		if expr.Err != nil {
			return fmt.Errorf("expr %d: both node and error", i)
		}
		if err := checkNode(expr.Node, sf.ID, lenContent); err != nil {
			return fmt.Errorf("expr %d: %w", i, err)
		}
		sp := expr.Node.Span()
		if havePrev && sp.Start < prev.End {
			return fmt.Errorf("expr %d span %v overlaps previous %v", i, sp, prev)
		}
		prev, havePrev = sp, true
	}
	return nil
}

// checkNode обходит дерево через ast.Inspect и останавливается на первой ошибке.
func checkNode(root ast.Node, file source.FileID, lenContent uint32) error {
	var err error
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil || err != nil {
			return false
		}
		err = checkOne(n, file, lenContent)
		return err == nil
	})
	return err
}

// checkOne проверяет спан узла и, для списка, его непосредственных детей.
func checkOne(n ast.Node, file source.FileID, lenContent uint32) error {
	sp := n.Span()
	if sp.End <= sp.Start {
		return fmt.Errorf("empty %s span: %v", ast.Kind(n), sp)
	}
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", ast.Kind(n), sp.File, file)
	}
	if sp.End > lenContent {
		return fmt.Errorf("%s span end beyond content: %d > %d", ast.Kind(n), sp.End, lenContent)
	}

	l, ok := n.(*ast.List)
	if !ok {
		return nil
	}
	for i, e := range l.Elems {
		if e == nil {
			return fmt.Errorf("nil element %d in list %v", i, sp)
		}
		esp := e.Span()
		if !sp.Contains(esp) {
			return fmt.Errorf("element span %v is outside list span %v", esp, sp)
		}
		if i > 0 && esp.Start < l.Elems[i-1].Span().End {
			return fmt.Errorf("element span %v overlaps previous sibling", esp)
		}
	}
	return nil
}

// CheckTokenInvariants проверяет поток токенов: ровно один EOF в конце,
// спаны внутри файла, без пересечений и по возрастанию.
// Invalid накрывает весь незакрытый литерал, поэтому может перекрывать предыдущие токены.
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 || !tokens[len(tokens)-1].Kind.IsEOF() {
		return fmt.Errorf("token stream does not end with EOF")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		if tok.Kind.IsEOF() && i != len(tokens)-1 {
			return fmt.Errorf("EOF at %d before end of stream", i)
		}
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > lenContent {
			return fmt.Errorf("token %d span %v out of bounds", i, sp)
		}
		if tok.Kind == token.Invalid {
			prevEnd = max(prevEnd, sp.End)
			continue
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d span %v overlaps previous token", i, sp)
		}
		prevEnd = sp.End
	}
	return nil
}
