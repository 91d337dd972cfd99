package driver

import (
	"fmt"

	"fortio.org/safecast"

	"appian/internal/diag"
	"appian/internal/lexer"
	"appian/internal/observ"
	"appian/internal/parser"
	"appian/internal/source"
)

// Options собирает настройки лексера и парсера, общие для всех команд.
type Options struct {
	MaxDiagnostics int
	WordSpacing    lexer.WordSpacing
	NormalizeNFC   bool
	// MaxDepth ограничивает вложенность списков (0 значит parser.DefaultMaxDepth).
	MaxDepth int
	// MaxErrors ограничивает число синтаксических ошибок (0 значит MaxDiagnostics).
	MaxErrors uint
	// Timer, если задан, получает фазы load/tokenize/parse.
	Timer *observ.Timer
	// Progress получает события по каждому файлу; nil: без событий.
	Progress ProgressSink
}

func (o Options) loadOptions() source.LoadOptions {
	return source.LoadOptions{NormalizeNFC: o.NormalizeNFC}
}

// newReporter is shared by the lexer and parser of one file and drops repeats.
func newReporter(bag *diag.Bag) diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: bag})
}

func (o Options) lexerOptions(rep diag.Reporter) lexer.Options {
	return lexer.Options{
		Reporter:    rep,
		WordSpacing: o.WordSpacing,
	}
}

func (o Options) parserOptions(rep diag.Reporter) (parser.Options, error) {
	maxErrors := o.MaxErrors
	if maxErrors == 0 {
		var err error
		maxErrors, err = safecast.Conv[uint](o.MaxDiagnostics)
		if err != nil {
			return parser.Options{}, fmt.Errorf("invalid max diagnostics: %w", err)
		}
	}
	return parser.Options{
		MaxDepth:  o.MaxDepth,
		MaxErrors: maxErrors,
		Reporter:  rep,
	}, nil
}
