package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.appian", []byte("{1}"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.appian", []byte("{2}"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.appian")
	if !exists {
		t.Fatal("Expected file to exist after Add")
	}
	if latestID != id2 {
		t.Errorf("Expected latest ID to be %d, got %d", id2, latestID)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "{1}" {
		t.Errorf("Expected first file content to be '{1}', got %q", got)
	}
	if fs.Len() != 2 {
		t.Errorf("Expected 2 files, got %d", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("virtual.appian", []byte("a\nbc\n\nd"))
	f := fs.Get(id)

	want := []uint32{1, 4, 5}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, f.LineIdx[i], want[i])
		}
	}
	if f.Flags&FileVirtual == 0 {
		t.Errorf("expected FileVirtual flag")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.appian", []byte("{1,\n  \"\u00e9\"}\n"))

	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},
		{3, 1, 4}, // сам '\n' принадлежит первой строке
		{4, 2, 1},
		{6, 2, 3},
		{9, 2, 5}, // после двухбайтовой 'é' колонка считается в рунах
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start.Line != tt.line || start.Col != tt.col {
			t.Errorf("Resolve(%d) = %d:%d, want %d:%d", tt.off, start.Line, start.Col, tt.line, tt.col)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("lines.appian", []byte("first\nsecond\nthird")))

	cases := map[uint32]string{0: "", 1: "first", 2: "second", 3: "third", 4: ""}
	for n, want := range cases {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestLoadStripsBOMKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.appian")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("{1,\r\n2}\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "{1,\r\n2}\r\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileHasCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if got := f.GetLine(1); got != "{1," {
		t.Errorf("GetLine(1) = %q, want %q", got, "{1,")
	}
	start, _ := fs.Resolve(Span{File: id, Start: 5, End: 6})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("offset 5 resolved to %+v, want 2:1", start)
	}
}

func TestAddVirtualMatchesLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "same.appian")
	content := []byte("\ufeff\"a\r\nb\"")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	fromDisk, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fromMemory := fs.AddVirtual("mem.appian", content)

	disk, mem := fs.Get(fromDisk), fs.Get(fromMemory)
	if string(disk.Content) != string(mem.Content) {
		t.Errorf("disk content %q != memory content %q", disk.Content, mem.Content)
	}
	if mem.Flags&FileVirtual == 0 || mem.Flags&FileHadBOM == 0 {
		t.Errorf("virtual flags = %b", mem.Flags)
	}
}

func TestLoadNormalizeNFC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nfc.appian")
	// "e" + combining acute accent
	if err := os.WriteFile(path, []byte("\"e\u0301\""), 0o600); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.LoadWithOptions(path, LoadOptions{NormalizeNFC: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "\"\u00e9\"" {
		t.Errorf("content = %q, want precomposed é", f.Content)
	}
	if f.Flags&FileNormalizedNFC == 0 {
		t.Errorf("expected FileNormalizedNFC flag")
	}

	id, err = fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if fs.Get(id).Flags&FileNormalizedNFC != 0 {
		t.Errorf("plain Load must not normalize")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.appian")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
