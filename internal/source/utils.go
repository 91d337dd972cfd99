package source

import (
	"bytes"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// hasCRLF сообщает, есть ли в содержимом \r\n. Байты не меняются:
// внутри строковых литералов \r должен дойти до лексера как есть.
func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte("\r\n"))
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// normalizeNFC returns content in Unicode normalization form C.
// The flag is false when the input was already normalized.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	out := norm.NFC.Bytes(content)
	return out, !bytes.Equal(out, content)
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol maps a byte offset to a line and a rune-based column.
func toLineCol(content []byte, lineIdx []uint32, off uint32) LineCol {
	if int(off) > len(content) {
		off = uint32(len(content))
	}

	// бинпоиск: количество переводов строки строго до off
	lo, hi := 0, len(lineIdx)
	for lo < hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	line := lo

	var startOff uint32
	if line > 0 {
		startOff = lineIdx[line-1] + 1
	}

	col := utf8.RuneCount(content[startOff:off])
	return LineCol{Line: uint32(line + 1), Col: uint32(col + 1)}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the absolute form of path.
func AbsolutePath(path string) (string, error) {
	return filepath.Abs(path)
}

// RelativePath returns path relative to baseDir.
func RelativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	return filepath.Rel(absBase, absPath)
}

// BaseName returns the last element of path.
func BaseName(path string) string {
	return filepath.Base(path)
}
