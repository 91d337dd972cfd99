package fuzztests

import (
	"strings"
	"testing"
	"time"

	"appian/internal/diag"
	"appian/internal/lexer"
	"appian/internal/parser"
	"appian/internal/source"
	"appian/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parseInput(input []byte) (parser.Result, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.appian", input))

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: 128,
	})
	return res, file
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		res, file := parseInput(clampInput(input))
		if err := testkit.CheckSpanInvariants(res, file); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte(strings.Repeat("{", 1000)))    // nesting past the depth limit
	f.Add([]byte(strings.Repeat("{1,", 300)))   // unterminated nested lists
	f.Add([]byte(strings.Repeat("}", 500)))     // stray closers
	f.Add([]byte(strings.Repeat(`{"a",`, 200))) // strings inside open lists
	f.Add([]byte(strings.Repeat(",:!()", 100))) // punctuation only

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseInput(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser timed out after %v on input of length %d", parseTimeout, len(input))
		}
	})
}
