package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files sharing one global byte
// position space. Positions are allocated through an atomic compare-and-swap
// loop rather than a mutex: a length is reserved, never released, and two
// concurrent allocations can never receive overlapping ranges. The files
// slice and path index have no lock, so Add itself is not safe for
// concurrent use; cmd/emberc reads positional files concurrently via
// errgroup but calls Add for them one at a time.
type FileSet struct {
	next    atomic.Uint32 // next free Pos
	files   []File
	index   map[string]FileID
	baseDir string
}

// NewFileSet creates a new empty FileSet. Position 0 (NoPos) is never
// allocated to real content, so a zero Span reliably means "no location".
func NewFileSet() *FileSet {
	fs := &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
	fs.next.Store(1)
	return fs
}

func (fileSet *FileSet) SetBaseDir(dir string) { fileSet.baseDir = dir }

func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// allocate reserves `size` bytes of global position space and returns the
// base position of the reservation.
func (fileSet *FileSet) allocate(size uint32) Pos {
	for {
		base := fileSet.next.Load()
		next := base + size + 1 // one byte of padding between files
		if fileSet.next.CompareAndSwap(base, next) {
			return Pos(base)
		}
	}
}

// Add stores a file from normalized bytes, reserves its slice of the global
// position space, and returns a new FileID. It always creates a new FileID
// even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	hash := sha256.Sum256(content)
	lineIdx := buildLineIndex(content)
	normalizedPath := normalizePath(path)

	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("file size overflow: %w", err))
	}
	base := fileSet.allocate(size)

	lenFiles, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	id := FileID(lenFiles)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizedPath,
		Base:    base,
		Content: content,
		LineIdx: lineIdx,
		Hash:    hash,
		Flags:   flags,
	})
	fileSet.index[normalizedPath] = id
	return id
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the
// FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

func (fileSet *FileSet) Get(id FileID) *File { return &fileSet.files[id] }

func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	if id, ok := fileSet.index[normalizePath(path)]; ok {
		return &fileSet.files[id], true
	}
	return nil, false
}

// FileAt returns the file owning a global position, or false if no loaded
// file covers it.
func (fileSet *FileSet) FileAt(p Pos) (*File, bool) {
	i := sort.Search(len(fileSet.files), func(k int) bool { return fileSet.files[k].Base > p })
	if i == 0 {
		return nil, false
	}
	f := &fileSet.files[i-1]
	if p < f.Base || p > f.end() {
		return nil, false
	}
	return f, true
}

// Resolve converts a span into line and column positions within the file
// that owns its start position.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f, ok := fileSet.FileAt(span.Lo)
	if !ok {
		return LineCol{Line: 1, Col: 1}, LineCol{Line: 1, Col: 1}
	}
	lo := uint32(span.Lo - f.Base)
	hi := uint32(span.Hi - f.Base)
	return toLineCol(f.LineIdx, lo), toLineCol(f.LineIdx, hi)
}

func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	var start, end, lenLineIdx, lenContent uint32
	var err error
	lenLineIdx, err = safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err = safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}

	return string(f.Content[start:end])
}

// FormatPath formats the file's path according to mode: "absolute",
// "relative", "basename", or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
