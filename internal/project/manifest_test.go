package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"ember/internal/project"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFindsNearestManifest(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ember.toml"), `
[package]
name = "hello"

[run]
main = "main.ember"
files = ["lib.ember"]
`)
	sub := filepath.Join(root, "src", "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := project.Load(sub)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected to find ember.toml")
	}
	if m.Package.Name != "hello" {
		t.Fatalf("expected package name hello, got %q", m.Package.Name)
	}
	entries := m.EntryFiles()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entry files, got %v", entries)
	}
	if entries[0] != filepath.Join(root, "main.ember") {
		t.Fatalf("expected main.ember first, got %v", entries)
	}
}

func TestLoadReportsMissingManifestAsNotFound(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := project.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no manifest to be found")
	}
}

func TestLoadRejectsManifestMissingRunMain(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ember.toml"), `
[package]
name = "hello"
`)
	if _, _, err := project.Load(dir); err == nil {
		t.Fatal("expected an error for missing [run].main")
	}
}
