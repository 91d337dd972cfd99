package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"appian/internal/diag"
	"appian/internal/diagfmt"
	"appian/internal/observ"
	"appian/internal/source"
)

// printDiagnostics выводит диагностику в stderr в формате --diag-format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 {
		return nil
	}
	format, err := cmd.Flags().GetString("diag-format")
	if err != nil {
		return fmt.Errorf("failed to get diag-format flag: %w", err)
	}
	switch format {
	case "short":
		return diagfmt.Short(os.Stderr, bag, fs, diagfmt.ShortOpts{PathMode: diagfmt.PathModeAuto, ShowNotes: true})
	case "json":
		return diagfmt.JSON(os.Stderr, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeAuto,
			IncludeNotes:     true,
		})
	case "pretty":
	default:
		return fmt.Errorf("unknown diag format %q (want pretty|short|json)", format)
	}
	colored, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     colored,
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
	return nil
}

// printTimings печатает сводку фаз при --timings.
func printTimings(cmd *cobra.Command, timer *observ.Timer) {
	if timer == nil {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
}
