// Package project loads an optional ember.toml project manifest naming a
// program's main file and the other source files compiled with it (it has
// no search paths), the Go rendering of the
// teacher's cmd/surge/project_manifest.go for this spec's simpler
// (module-less, no DAG) program model: a manifest here is just a named list
// of source files to compile together, not a build graph.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the CLI looks for in the working directory (or an
// ancestor, via Find) before falling back to positional file arguments.
const ManifestName = "ember.toml"

// Config is the decoded shape of ember.toml.
//
//	[package]
//	name = "hello"
//
//	[run]
//	main = "main.ember"
//	files = ["lib.ember"]
type Config struct {
	Package PackageConfig `toml:"package"`
	Run     RunConfig     `toml:"run"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type RunConfig struct {
	Main  string   `toml:"main"`
	Files []string `toml:"files"`
}

// Manifest pairs a decoded Config with the directory it was found in, so
// relative paths in Run.Main/Run.Files resolve against the manifest's own
// location rather than the process's working directory.
type Manifest struct {
	Path string
	Root string
	Config
}

// Find walks upward from startDir looking for ember.toml, the same
// find-nearest-ancestor idiom as the teacher's project.FindSurgeToml.
func Find(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and decodes the nearest ember.toml above startDir. It reports
// ok=false, err=nil when no manifest exists: the CLI then falls back to
// positional file arguments rather than failing outright.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") || strings.TrimSpace(cfg.Package.Name) == "" {
		return nil, true, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("run") || strings.TrimSpace(cfg.Run.Main) == "" {
		return nil, true, fmt.Errorf("%s: missing [run].main", path)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// EntryFiles resolves Run.Main followed by Run.Files (in that order) into
// absolute paths rooted at the manifest's directory. Run.Main is always
// first so the CLI can mangle its symbol path as the run entrypoint.
func (m *Manifest) EntryFiles() []string {
	out := make([]string, 0, 1+len(m.Run.Files))
	out = append(out, filepath.Join(m.Root, filepath.FromSlash(m.Run.Main)))
	for _, f := range m.Run.Files {
		out = append(out, filepath.Join(m.Root, filepath.FromSlash(f)))
	}
	return out
}
