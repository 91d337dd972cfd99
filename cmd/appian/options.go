package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"appian/internal/driver"
	"appian/internal/lexer"
	"appian/internal/observ"
)

// driverOptions собирает driver.Options: сначала appian.toml, затем явно заданные флаги.
func driverOptions(cmd *cobra.Command, target string) (driver.Options, error) {
	var opts driver.Options

	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics < 0 {
		return opts, fmt.Errorf("--max-diagnostics must not be negative")
	}
	opts.MaxDiagnostics = maxDiagnostics

	manifest, _, err := loadProjectManifest(manifestStartDir(target))
	if err != nil {
		return opts, err
	}
	if err := applyManifest(&opts, manifest); err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("word-spacing") || !manifest.defined("lexer", "word_spacing") {
		spacingStr, err := cmd.Flags().GetString("word-spacing")
		if err != nil {
			return opts, fmt.Errorf("failed to get word-spacing flag: %w", err)
		}
		spacing, err := lexer.ParseWordSpacing(spacingStr)
		if err != nil {
			return opts, err
		}
		opts.WordSpacing = spacing
	}
	if cmd.Flags().Changed("max-depth") {
		maxDepth, err := cmd.Flags().GetInt("max-depth")
		if err != nil {
			return opts, fmt.Errorf("failed to get max-depth flag: %w", err)
		}
		if maxDepth < 0 {
			return opts, fmt.Errorf("--max-depth must not be negative")
		}
		opts.MaxDepth = maxDepth
	}
	if cmd.Flags().Changed("nfc") {
		nfc, err := cmd.Flags().GetBool("nfc")
		if err != nil {
			return opts, fmt.Errorf("failed to get nfc flag: %w", err)
		}
		opts.NormalizeNFC = nfc
	}

	timings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return opts, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		opts.Timer = observ.NewTimer()
	}
	return opts, nil
}

func applyManifest(opts *driver.Options, m *projectManifest) error {
	if m == nil {
		return nil
	}
	cfg := m.Config
	if m.defined("lexer", "word_spacing") {
		spacing, err := lexer.ParseWordSpacing(cfg.Lexer.WordSpacing)
		if err != nil {
			return fmt.Errorf("%s: [lexer].word_spacing: %w", m.Path, err)
		}
		opts.WordSpacing = spacing
	}
	if m.defined("lexer", "normalize_nfc") {
		opts.NormalizeNFC = cfg.Lexer.NormalizeNFC
	}
	if m.defined("parser", "max_depth") {
		opts.MaxDepth = cfg.Parser.MaxDepth
	}
	if m.defined("parser", "max_errors") {
		maxErrors, err := safecast.Conv[uint](cfg.Parser.MaxErrors)
		if err != nil {
			return fmt.Errorf("%s: [parser].max_errors: %w", m.Path, err)
		}
		opts.MaxErrors = maxErrors
	}
	return nil
}

// manifestStartDir returns the directory where the appian.toml lookup starts.
func manifestStartDir(target string) string {
	if target == "" || target == "-" {
		return "."
	}
	if st, err := os.Stat(target); err == nil && st.IsDir() {
		return target
	}
	return filepath.Dir(target)
}
