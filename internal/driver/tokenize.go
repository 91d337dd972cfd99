package driver

import (
	"context"
	"fmt"
	"strconv"

	"appian/internal/diag"
	"appian/internal/lexer"
	"appian/internal/source"
	"appian/internal/token"
	"appian/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // включая завершающий EOF
	Bag     *diag.Bag
}

// Tokenize загружает файл и прогоняет через лексер до EOF.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := loadFile(ctx, fs, path, opts)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.MaxDiagnostics)
	tokens := tokenizeFile(ctx, file, opts, newReporter(bag))
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

func loadFile(ctx context.Context, fs *source.FileSet, path string, opts Options) (source.FileID, error) {
	idx := opts.Timer.Begin("load")
	sp := trace.Begin(trace.FromContext(ctx), trace.LevelPhase, "load", trace.ParentSpan(ctx))

	fileID, err := fs.LoadWithOptions(path, opts.loadOptions())
	if err != nil {
		sp.End("failed")
		opts.Timer.End(idx, "failed")
		return 0, fmt.Errorf("load %s: %w", path, err)
	}
	sp.End("")
	opts.Timer.End(idx, path)
	return fileID, nil
}

// tokenizeFile returns every token including the final EOF.
func tokenizeFile(ctx context.Context, file *source.File, opts Options, rep diag.Reporter) []token.Token {
	idx := opts.Timer.Begin("tokenize")
	sp := trace.Begin(trace.FromContext(ctx), trace.LevelPhase, "tokenize", trace.ParentSpan(ctx))

	opts.emit(file.Path, StageTokenize, StatusWorking)
	lx := lexer.New(file, opts.lexerOptions(rep))
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	note := strconv.Itoa(len(tokens)-1) + " tokens"
	sp.Set("tokens", strconv.Itoa(len(tokens)-1)).End("")
	opts.Timer.End(idx, note)
	return tokens
}
