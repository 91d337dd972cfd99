package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"appian/internal/diag"
	"appian/internal/source"
)

const tabWidth = 4

type palette struct {
	err, warn, info *color.Color
	bold, gutter    *color.Color
	caret, note     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.bold, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		file := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			formatPath(fs, file, opts.PathMode), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.bold.Sprint(d.Code.ID()),
			p.bold.Sprint(d.Message))

		writeSnippet(w, fs, d.Primary, int(opts.Context), p)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				ns, _ := fs.Resolve(n.Span)
				fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
					p.note.Sprint("note:"),
					formatPath(fs, fs.Get(n.Span.File), opts.PathMode), ns.Line, ns.Col, n.Msg)
			}
		}
	}
}

// writeSnippet печатает строку(и) вокруг span и подчёркивание под основной.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int, p palette) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	first := max(int(start.Line)-context, 1)
	last := int(start.Line) + context
	gutterWidth := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		if ln > len(file.LineIdx)+1 {
			break
		}
		line := file.GetLine(uint32(ln))
		fmt.Fprintf(w, "%s %s\n",
			p.gutter.Sprintf("%*d |", gutterWidth, ln),
			expandTabs(line))

		if ln != int(start.Line) {
			continue
		}
		pad, width := caretColumns(line, start, end)
		fmt.Fprintf(w, "%s %s%s\n",
			p.gutter.Sprintf("%*s |", gutterWidth, ""),
			strings.Repeat(" ", pad),
			p.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// caretColumns возвращает отступ и ширину подчёркивания в колонках терминала.
// Span, уходящий за конец строки, подчёркивается до её конца.
func caretColumns(line string, start, end source.LineCol) (pad, width int) {
	runes := []rune(line)
	from := min(int(start.Col)-1, len(runes))
	to := len(runes)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(runes))
	}
	to = max(to, from)

	pad = runewidth.StringWidth(expandTabs(string(runes[:from])))
	width = runewidth.StringWidth(expandTabs(string(runes[from:to])))
	return pad, max(width, 1)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
