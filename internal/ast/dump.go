package ast

import (
	"strconv"
	"strings"
)

// Dump renders n in debug form, e.g. List([String("toto"), Integer(12)]).
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n)
	return sb.String()
}

func dump(sb *strings.Builder, n Node) {
	switch x := n.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *Numeric:
		sb.WriteString(NumberString(x.Value))
	case *String:
		sb.WriteString("String(")
		sb.WriteString(strconv.Quote(x.Value))
		sb.WriteByte(')')
	case *List:
		sb.WriteString("List([")
		for i, e := range x.Elems {
			if i > 0 {
				sb.WriteString(", ")
			}
			dump(sb, e)
		}
		sb.WriteString("])")
	default:
		panic("ast.Dump: unexpected node type")
	}
}

// NumberString renders a Number as Integer(12) or Decimal(12.2).
func NumberString(v Number) string {
	switch x := v.(type) {
	case Integer:
		return "Integer(" + strconv.FormatInt(int64(x), 10) + ")"
	case Decimal:
		return "Decimal(" + strconv.FormatFloat(float64(x), 'g', -1, 64) + ")"
	default:
		return "Number(?)"
	}
}
