package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"appian/internal/lexer"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	registerGlobalFlags(cmd.Flags())
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findManifest(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[lexer]
word_spacing = "split"
normalize_nfc = true

[parser]
max_depth = 16
max_errors = 4
`)
	cfg, meta, err := loadProjectConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Lexer.WordSpacing != "split" || !cfg.Lexer.NormalizeNFC {
		t.Errorf("lexer config = %+v", cfg.Lexer)
	}
	if cfg.Parser.MaxDepth != 16 || cfg.Parser.MaxErrors != 4 {
		t.Errorf("parser config = %+v", cfg.Parser)
	}
	if !meta.IsDefined("parser", "max_depth") {
		t.Error("max_depth should be defined")
	}
}

func TestLoadProjectConfigRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "[lexer]\nspacing = \"keep\"\n", "unknown keys: lexer.spacing"},
		{"zero depth", "[parser]\nmax_depth = 0\n", "max_depth must be positive"},
		{"negative errors", "[parser]\nmax_errors = -1\n", "max_errors must not be negative"},
		{"bad toml", "[lexer\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, _, err := loadProjectConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDriverOptionsManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[lexer]
word_spacing = "keep"

[parser]
max_depth = 8
max_errors = 3
`)
	file := filepath.Join(dir, "main.appian")

	opts, err := driverOptions(newTestCmd(t), file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.WordSpacing != lexer.SpacingKeep {
		t.Errorf("WordSpacing = %v, want keep", opts.WordSpacing)
	}
	if opts.MaxDepth != 8 || opts.MaxErrors != 3 {
		t.Errorf("MaxDepth = %d, MaxErrors = %d", opts.MaxDepth, opts.MaxErrors)
	}
	if opts.MaxDiagnostics != 100 {
		t.Errorf("MaxDiagnostics = %d, want default 100", opts.MaxDiagnostics)
	}
	if opts.Timer != nil {
		t.Error("timer should be nil without --timings")
	}
}

func TestDriverOptionsFlagsOverrideManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[lexer]\nword_spacing = \"keep\"\n\n[parser]\nmax_depth = 8\n")

	cmd := newTestCmd(t, "--word-spacing=split", "--max-depth=2", "--timings")
	opts, err := driverOptions(cmd, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.WordSpacing != lexer.SpacingSplit {
		t.Errorf("WordSpacing = %v, want split", opts.WordSpacing)
	}
	if opts.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", opts.MaxDepth)
	}
	if opts.Timer == nil {
		t.Error("timer expected with --timings")
	}
}

func TestDriverOptionsInvalidSpacing(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[lexer]\nword_spacing = \"wide\"\n")
	if _, err := driverOptions(newTestCmd(t), dir); err == nil {
		t.Fatal("expected error for invalid word_spacing")
	}
	if _, err := driverOptions(newTestCmd(t, "--word-spacing=wide"), t.TempDir()); err == nil {
		t.Fatal("expected error for invalid --word-spacing")
	}
}
