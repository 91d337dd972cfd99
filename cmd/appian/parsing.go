package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"appian/internal/diagfmt"
	"appian/internal/driver"
	"appian/internal/parser"
	"appian/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.appian|directory|->",
	Short: "Parse an appian source file or directory and output expressions",
	Long: `Parse analyzes an appian source file, standard input (-) or all *.appian
files in a directory and outputs the parsed top-level expressions`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "directory progress display (auto|on|off)")
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "tree":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	opts, err := driverOptions(cmd, target)
	if err != nil {
		return err
	}
	defer printTimings(cmd, opts.Timer)

	if target == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result, parseErr := driver.ParseSource(cmd.Context(), "<stdin>", content, opts)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return outputParseResult(cmd, result, format)
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		result, parseErr := driver.Parse(cmd.Context(), target, opts)
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return outputParseResult(cmd, result, format)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
	)
	if !quiet && shouldUseTUI(mode) {
		fs, results, err = runParseDirWithUI(cmd.Context(), "appian parse", target, opts, jobs)
	} else {
		fs, results, err = driver.ParseDir(cmd.Context(), target, opts, jobs)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	return outputParseDir(cmd, fs, results, format, quiet)
}

func outputParseResult(cmd *cobra.Command, result *driver.ParseResult, format string) error {
	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if err := writeExprs(os.Stdout, result.Result, result.FileSet, format); err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}

func writeExprs(w io.Writer, res parser.Result, fs *source.FileSet, format string) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(w, res)
	case "tree":
		return diagfmt.FormatASTTree(w, res)
	default:
		return diagfmt.FormatASTPretty(w, res, fs)
	}
}

func outputParseDir(cmd *cobra.Command, fs *source.FileSet, results []driver.ParseDirResult, format string, quiet bool) error {
	hadErrors := false
	for _, r := range results {
		if r.Bag.HasErrors() {
			hadErrors = true
		}
		if err := printDiagnostics(cmd, r.Bag, fs); err != nil {
			return err
		}
	}

	if format == "json" {
		output := make(map[string][]diagfmt.ExprOutput, len(results))
		for _, r := range results {
			output[displayPath(fs, r)] = diagfmt.BuildASTJSON(r.Result)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	} else {
		for idx, r := range results {
			if !quiet {
				if _, err := fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(fs, r)); err != nil {
					return err
				}
			}
			if err := writeExprs(os.Stdout, r.Result, fs, format); err != nil {
				return err
			}
			if !quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(os.Stdout); err != nil {
					return err
				}
			}
		}
	}

	if hadErrors {
		return errHadErrors
	}
	return nil
}

func displayPath(fs *source.FileSet, r driver.ParseDirResult) string {
	return fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
}
