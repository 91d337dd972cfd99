package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	// FileHasCRLF marks content with \r\n line endings; the bytes are kept as is.
	FileHasCRLF
	// FileNormalizedNFC marks content rewritten to Unicode normalization form C.
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, counted in runes
}

// LoadOptions tweaks how Load normalizes file content.
type LoadOptions struct {
	// NormalizeNFC rewrites the buffer into Unicode NFC before indexing.
	NormalizeNFC bool
}
