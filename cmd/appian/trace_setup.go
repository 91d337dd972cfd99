package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"appian/internal/trace"
)

// setupTracing builds the tracer from the --trace* flags and puts it into
// the command context. The returned func flushes it.
func setupTracing(cmd *cobra.Command) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var cfg trace.Config
	var levelStr, formatStr string
	var err error
	if cfg.Path, err = pf.GetString("trace"); err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	if levelStr, err = pf.GetString("trace-level"); err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	if formatStr, err = pf.GetString("trace-format"); err != nil {
		return nil, fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	if cfg.Ring, err = pf.GetInt("trace-ring"); err != nil {
		return nil, fmt.Errorf("failed to get trace-ring flag: %w", err)
	}

	if cfg.Level, err = trace.ParseLevel(levelStr); err != nil {
		return nil, err
	}
	// --trace или --trace-ring без уровня включают фазы
	if cfg.Level == trace.LevelOff && !pf.Changed("trace-level") && (cfg.Path != "" || cfg.Ring > 0) {
		cfg.Level = trace.LevelPhase
	}
	if cfg.Format, err = trace.ParseFormat(formatStr); err != nil {
		return nil, err
	}

	tracer, err := trace.New(cfg)
	if err != nil {
		return nil, err
	}
	cmd.SetContext(trace.WithTracer(ctx, tracer))

	return func() {
		if ring, ok := tracer.(*trace.Ring); ok {
			if err := ring.WriteTo(cmd.ErrOrStderr(), cfg.Format); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
			}
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: %v\n", err)
		}
	}, nil
}
