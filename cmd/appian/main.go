package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"appian/internal/version"
)

// errHadErrors сигнализирует, что команда отработала, но выдала ошибки в диагностиках.
var errHadErrors = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:           "appian",
	Short:         "Appian expression front end",
	Long:          `appian tokenizes and parses expression files into syntax trees`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		stopProfiling, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		stopTracing, err := setupTracing(cmd)
		if err != nil {
			stopProfiling()
			return err
		}
		shutdown = func() {
			stopTracing()
			stopProfiling()
		}
		return nil
	},
}

// shutdown закрывает трассировщик и профили после выполнения команды
var shutdown = func() {}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	registerGlobalFlags(rootCmd.PersistentFlags())
}

// registerGlobalFlags описывает флаги, общие для всех подкоманд.
func registerGlobalFlags(pf *pflag.FlagSet) {
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("diag-format", "pretty", "diagnostics format on stderr (pretty|short|json)")
	pf.String("word-spacing", "trim", "whitespace inside bare words (keep|trim|split)")
	pf.Int("max-depth", 0, "maximum list nesting (0 = default)")
	pf.Bool("nfc", false, "normalize sources to Unicode NFC on load")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|phase|detail)")
	pf.String("trace-format", "text", "trace format (text|ndjson)")
	pf.Int("trace-ring", 0, "keep only the last N trace events and dump them to stderr on exit (0 = stream)")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
}

// main registers subcommands and flags, then executes the root command.
// Any error, including reported error diagnostics, exits with status 1.
func main() {
	rootCmd.Version = version.Version

	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		if !errors.Is(err, errHadErrors) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor решает по флагу --color, красить ли вывод в f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", colorFlag)
	}
}
