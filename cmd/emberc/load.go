package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"ember/internal/source"
)

// loadedFile pairs a positional argument with the bytes read for it, kept
// separate from the FileSet so the I/O-bound read (errgroup's reason for
// existing here, per SPEC_FULL's domain stack) runs concurrently while the
// FileSet mutation it feeds stays on one goroutine.
type loadedFile struct {
	path    string
	content []byte
}

// loadFiles reads every named path concurrently but calls FileSet.Add itself
// back on the calling goroutine, once per file in argument order. FileSet's position allocator
// (source.FileSet.allocate) is safe under concurrent CAS, but its files
// slice/index map are plain Go slices/maps with no lock of their own;
// serializing the Add calls keeps this loader correct without adding a mutex
// to FileSet that the core's own single-threaded stages would never need.
func loadFiles(fs *source.FileSet, paths []string) ([]source.FileID, error) {
	loaded := make([]loadedFile, len(paths))

	var g errgroup.Group
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			// #nosec G304 -- path is a CLI-supplied positional argument
			content, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			loaded[i] = loadedFile{path: p, content: content}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := make([]source.FileID, len(paths))
	for i, lf := range loaded {
		content, flags := normalizeForLoad(lf.content)
		ids[i] = fs.Add(lf.path, content, flags)
	}
	return ids, nil
}

// normalizeForLoad strips a BOM and normalizes CRLF the same way
// FileSet.Load does for a single file, so loadFiles's concurrent multi-file
// path and the single-file convenience path behave identically.
func normalizeForLoad(content []byte) ([]byte, source.FileFlags) {
	var flags source.FileFlags
	var hadBOM, hadCRLF bool
	content, hadBOM = source.RemoveBOM(content)
	content, hadCRLF = source.NormalizeCRLF(content)
	if hadBOM {
		flags |= source.FileHadBOM
	}
	if hadCRLF {
		flags |= source.FileNormalizedCRLF
	}
	return content, flags
}
