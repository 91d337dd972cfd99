package driver

import (
	"context"
	"strconv"

	"appian/internal/diag"
	"appian/internal/parser"
	"appian/internal/source"
	"appian/internal/token"
	"appian/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Result  parser.Result
	Bag     *diag.Bag
}

// Parse загружает файл, токенизирует и разбирает все выражения верхнего уровня.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

// ParseSource разбирает содержимое, которого нет на диске (stdin, тесты).
func ParseSource(ctx context.Context, name string, content []byte, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(ctx, fs, fs.Get(fileID), opts)
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) (*ParseResult, error) {
	bag := diag.NewBag(opts.MaxDiagnostics)
	res, tokens, err := parseFile(ctx, file, opts, bag)
	if err != nil {
		return nil, err
	}
	bag.Sort()
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Result:  res,
		Bag:     bag,
	}, nil
}

func parseFile(ctx context.Context, file *source.File, opts Options, bag *diag.Bag) (parser.Result, []token.Token, error) {
	rep := newReporter(bag)
	popts, err := opts.parserOptions(rep)
	if err != nil {
		return parser.Result{}, nil, err
	}
	tokens := tokenizeFile(ctx, file, opts, rep)

	opts.emit(file.Path, StageParse, StatusWorking)
	idx := opts.Timer.Begin("parse")
	tr := trace.FromContext(ctx)
	sp := trace.Begin(tr, trace.LevelPhase, "parse", trace.ParentSpan(ctx))

	res := parser.ParseTokens(tokens, popts)

	failed := 0
	for _, e := range res.Exprs {
		if e.Err != nil {
			failed++
			trace.Fault(tr, "parse-error", e.Err.Error(), sp.ID())
		}
	}
	sp.Set("exprs", strconv.Itoa(len(res.Exprs))).
		Set("failed", strconv.Itoa(failed)).
		End("")
	opts.Timer.End(idx, strconv.Itoa(len(res.Exprs))+" exprs")
	return res, tokens, nil
}
