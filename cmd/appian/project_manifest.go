package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "appian.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Lexer  lexerConfig  `toml:"lexer"`
	Parser parserConfig `toml:"parser"`
}

type lexerConfig struct {
	WordSpacing  string `toml:"word_spacing"`
	NormalizeNFC bool   `toml:"normalize_nfc"`
}

type parserConfig struct {
	MaxDepth  int `toml:"max_depth"`
	MaxErrors int `toml:"max_errors"`
}

// findManifest ищет appian.toml от startDir вверх до корня.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, meta, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
		meta:   meta,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, toml.MetaData, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return projectConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("parser", "max_depth") && cfg.Parser.MaxDepth <= 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [parser].max_depth must be positive", path)
	}
	if meta.IsDefined("parser", "max_errors") && cfg.Parser.MaxErrors < 0 {
		return projectConfig{}, meta, fmt.Errorf("%s: [parser].max_errors must not be negative", path)
	}
	return cfg, meta, nil
}

// defined сообщает, задан ли ключ в манифесте явно.
func (m *projectManifest) defined(key ...string) bool {
	return m != nil && m.meta.IsDefined(key...)
}
