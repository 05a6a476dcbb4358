package fsprobe

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	if !DirectoryExists(dir) {
		t.Fatalf("expected %s to exist", dir)
	}
	if DirectoryExists(filepath.Join(dir, "missing")) {
		t.Fatal("expected missing directory to report false")
	}

	file := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if DirectoryExists(file) {
		t.Fatal("regular file must not count as a directory")
	}
	if !FileExists(file) {
		t.Fatal("expected regular file to report true")
	}
	if FileExists(dir) {
		t.Fatal("directory must not count as a regular file")
	}
}

func TestListSubdirectoriesSkipsFiles(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"take1", "take2"} {
		if err := os.Mkdir(filepath.Join(dir, sub), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := ListSubdirectories(dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	sort.Strings(names)
	if len(names) != 2 || names[0] != "take1" || names[1] != "take2" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestListSubdirectoriesMissingDir(t *testing.T) {
	if _, err := ListSubdirectories(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestLoadYAMLMappingAbsent(t *testing.T) {
	docs, err := LoadYAMLMapping(filepath.Join(t.TempDir(), "meta.yml"))
	if err != nil {
		t.Fatalf("absent file must not error: %v", err)
	}
	if docs != nil {
		t.Fatalf("expected nil docs, got %v", docs)
	}
}

func TestLoadYAMLMappingMultiDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yml")
	content := "composer: Bach\nkey: C major\n---\nsource: imslp\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	docs, err := LoadYAMLMapping(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0]["composer"] != "Bach" {
		t.Fatalf("unexpected first document: %v", docs[0])
	}
	if docs[1]["source"] != "imslp" {
		t.Fatalf("unexpected second document: %v", docs[1])
	}
}

func TestLoadYAMLMappingMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.yml")
	if err := os.WriteFile(path, []byte(":\n\t- bad"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAMLMapping(path); err == nil {
		t.Fatal("expected parse error")
	}
}
