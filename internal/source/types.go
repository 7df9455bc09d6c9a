package source

type (
	// FileID uniquely identifies a source within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source.
	FileFlags uint8
)

const (
	// FileVirtual indicates the source was added from memory (a literal value, stdin, tests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source: either a lone value
// string or a value sheet loaded from disk.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
