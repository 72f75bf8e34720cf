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
	FileNormalizedCRLF
)

// File captures metadata and content for a single source file. Base is the
// file's starting position in the FileSet's global space; every byte offset
// into Content corresponds to Pos(Base) + offset.
type File struct {
	ID      FileID
	Path    string
	Base    Pos
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

func (f *File) end() Pos { return f.Base + Pos(len(f.Content)) }

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
