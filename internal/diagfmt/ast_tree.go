package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"appian/internal/ast"
	"appian/internal/parser"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type treeBlock struct {
	lines []string
	width int
	root  int
}

// FormatASTTree рисует каждое выражение верхнего уровня ASCII-деревом сверху вниз.
func FormatASTTree(w io.Writer, res parser.Result) error {
	for i, expr := range res.Exprs {
		root := &treeNode{label: fmt.Sprintf("Expr[%d]", i)}
		if expr.Err != nil {
			root.children = append(root.children, &treeNode{label: "<error>"})
		} else {
			root.children = append(root.children, buildTreeNode(expr.Node))
		}
		for _, line := range renderTree(root).lines {
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

func buildTreeNode(n ast.Node) *treeNode {
	l, ok := n.(*ast.List)
	if !ok {
		return &treeNode{label: nodeLabel(n)}
	}
	node := &treeNode{label: "List"}
	if len(l.Elems) == 0 {
		node.label = "List[]"
	}
	for _, e := range l.Elems {
		node.children = append(node.children, buildTreeNode(e))
	}
	return node
}

func pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree converts a treeNode into a treeBlock containing an ASCII-art representation.
//
// The returned treeBlock.lines is a slice of strings representing the rendered lines of
// the node and its descendants arranged as a tree with connector characters. The block's
// width is the horizontal extent of the rendered lines in terminal columns and root is
// the column of the root node's vertical connector within those lines.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)

	if len(node.children) == 0 {
		return treeBlock{
			lines: []string{label},
			width: labelWidth,
			root:  labelWidth / 2,
		}
	}

	childBlocks := make([]treeBlock, len(node.children))
	maxChildHeight := 0
	for i, child := range node.children {
		childBlocks[i] = renderTree(child)
		maxChildHeight = max(maxChildHeight, len(childBlocks[i].lines))
	}

	const spacing = 3

	positions := make([]int, len(childBlocks))
	totalWidth := 0
	for i, block := range childBlocks {
		positions[i] = totalWidth + block.root
		totalWidth += block.width
		if i != len(childBlocks)-1 {
			totalWidth += spacing
		}
	}

	childrenCenter := (positions[0] + positions[len(positions)-1]) / 2
	rootPos := labelWidth / 2
	shift := childrenCenter - rootPos

	childPrefix := 0
	if shift < 0 {
		// метка шире детей: сдвигаем детей вправо
		childPrefix = -shift
		for i := range positions {
			positions[i] += childPrefix
		}
		totalWidth += childPrefix
		shift = 0
	} else {
		rootPos += shift
	}

	width := max(totalWidth, shift+labelWidth)
	rootLine := pad(strings.Repeat(" ", shift)+label, width)

	connector := []byte(strings.Repeat(" ", width))
	connector[rootPos] = '|'
	for _, pos := range positions {
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, 2+maxChildHeight)
	lines = append(lines, rootLine, string(connector))
	for row := range maxChildHeight {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childPrefix))
		for i, block := range childBlocks {
			line := ""
			if row < len(block.lines) {
				line = block.lines[row]
			}
			sb.WriteString(pad(line, block.width))
			if i != len(childBlocks)-1 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
		}
		lines = append(lines, pad(sb.String(), width))
	}

	return treeBlock{
		lines: lines,
		width: width,
		root:  rootPos,
	}
}
