package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		CPUPath:   filepath.Join(dir, "cpu.pprof"),
		MemPath:   filepath.Join(dir, "mem.pprof"),
		TracePath: filepath.Join(dir, "trace.out"),
	}
	if !cfg.Enabled() {
		t.Fatal("config with paths should be enabled")
	}

	s, err := Start(cfg)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}

	for _, path := range []string{cfg.CPUPath, cfg.MemPath, cfg.TracePath} {
		st, err := os.Stat(path)
		if err != nil {
			t.Fatalf("%s: %v", path, err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", path)
		}
	}
}

func TestStartFailsOnBadPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "cpu.pprof")
	if _, err := Start(Config{CPUPath: missing}); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestNilSessionStop(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatalf("nil Stop: %v", err)
	}
	if (Config{}).Enabled() {
		t.Fatal("empty config should be disabled")
	}
}
