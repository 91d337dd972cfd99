package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"appian/internal/diagfmt"
	"appian/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.appian",
	Short: "Tokenize an appian source file",
	Long:  `Tokenize breaks down an appian source file into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := driverOptions(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(cmd.Context(), filePath, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	defer printTimings(cmd, opts.Timer)

	if err := printDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(os.Stdout, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}
