package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"appian/internal/ast"
	"appian/internal/parser"
	"appian/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Value    any             `json:"value,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

type ExprOutput struct {
	Index int            `json:"index"`
	Node  *ASTNodeOutput `json:"node,omitempty"`
	Error string         `json:"error,omitempty"`
}

// FormatASTPretty печатает каждое выражение верхнего уровня деревом с отступами.
func FormatASTPretty(w io.Writer, res parser.Result, fs *source.FileSet) error {
	for i, expr := range res.Exprs {
		if expr.Err != nil {
			if _, err := fmt.Fprintf(w, "Expr[%d]: <error> %v\n", i, expr.Err); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(w, "Expr[%d]: ", i)
		formatNodePretty(w, expr.Node, fs, "")
	}
	return nil
}

func formatNodePretty(w io.Writer, n ast.Node, fs *source.FileSet, prefix string) {
	fmt.Fprintf(w, "%s (span: %s)\n", nodeLabel(n), formatSpan(n.Span(), fs))

	l, ok := n.(*ast.List)
	if !ok {
		return
	}
	for i, e := range l.Elems {
		if i == len(l.Elems)-1 {
			fmt.Fprintf(w, "%s└─ ", prefix)
			formatNodePretty(w, e, fs, prefix+"   ")
		} else {
			fmt.Fprintf(w, "%s├─ ", prefix)
			formatNodePretty(w, e, fs, prefix+"│  ")
		}
	}
}

func nodeLabel(n ast.Node) string {
	switch x := n.(type) {
	case *ast.Numeric:
		return ast.NumberString(x.Value)
	case *ast.String:
		return "String(" + strconv.Quote(x.Value) + ")"
	case *ast.List:
		return fmt.Sprintf("List[%d]", len(x.Elems))
	default:
		panic(fmt.Sprintf("diagfmt: unexpected node %T", n))
	}
}

// BuildASTJSON строит JSON-представление всех выражений результата.
func BuildASTJSON(res parser.Result) []ExprOutput {
	output := make([]ExprOutput, 0, len(res.Exprs))
	for i, expr := range res.Exprs {
		out := ExprOutput{Index: i}
		if expr.Err != nil {
			out.Error = expr.Err.Error()
		} else {
			node := nodeJSON(expr.Node)
			out.Node = &node
		}
		output = append(output, out)
	}
	return output
}

// FormatASTJSON выводит результат разбора в JSON.
func FormatASTJSON(w io.Writer, res parser.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildASTJSON(res))
}

func nodeJSON(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{Type: ast.Kind(n), Span: n.Span()}
	switch x := n.(type) {
	case *ast.Numeric:
		switch v := x.Value.(type) {
		case ast.Integer:
			out.Kind, out.Value = "Integer", int64(v)
		case ast.Decimal:
			out.Kind, out.Value = "Decimal", float64(v)
		}
	case *ast.String:
		// пустая строка тоже значение, поэтому через указатель
		out.Value = &x.Value
	case *ast.List:
		out.Children = make([]ASTNodeOutput, 0, len(x.Elems))
		for _, e := range x.Elems {
			out.Children = append(out.Children, nodeJSON(e))
		}
	}
	return out
}
