package diagfmt

import (
	"cmp"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"appian/internal/diag"
	"appian/internal/source"
)

// ShortOpts configures Short.
type ShortOpts struct {
	PathMode  PathMode
	ShowNotes bool
}

type shortLine struct {
	path     string
	pos      source.LineCol
	severity string
	code     string
	msg      string
}

// Short пишет по строке на диагностику (и на заметку при ShowNotes):
//
//	error SYN2003 dir/a.appian:1:1 unterminated list
//
// Строки упорядочены по пути и позиции, сообщения сжаты в одну строку.
// Вывод не зависит от порядка в bag, поэтому годится для сравнения в тестах.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts ShortOpts) error {
	var lines []shortLine
	add := func(sp source.Span, severity string, code diag.Code, msg string) {
		if fs == nil || int(sp.File) >= fs.Len() {
			return
		}
		pos, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{
			path:     strings.TrimPrefix(filepath.ToSlash(formatPath(fs, fs.Get(sp.File), opts.PathMode)), "./"),
			pos:      pos,
			severity: severity,
			code:     code.ID(),
			msg:      strings.Join(strings.Fields(msg), " "),
		})
	}
	for _, d := range bag.Items() {
		add(d.Primary, strings.ToLower(d.Severity.String()), d.Code, d.Message)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				add(n.Span, "note", d.Code, n.Msg)
			}
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			cmp.Compare(a.path, b.path),
			cmp.Compare(a.pos.Line, b.pos.Line),
			cmp.Compare(a.pos.Col, b.pos.Col),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.msg, b.msg),
		)
	})
	for _, l := range lines {
		if _, err := fmt.Fprintf(w, "%s %s %s:%d:%d %s\n", l.severity, l.code, l.path, l.pos.Line, l.pos.Col, l.msg); err != nil {
			return err
		}
	}
	return nil
}
