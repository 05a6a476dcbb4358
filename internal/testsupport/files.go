// Package testsupport provides fixture helpers for tests that need piece
// directories on disk.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates path (and its parent directories) with the given content.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// NewPieceDir builds a piece directory under a fresh collection root and
// returns the root. Each listed suffix is created as <name><suffix> inside
// the piece folder.
func NewPieceDir(t testing.TB, name string, encodingSuffixes ...string) string {
	t.Helper()

	root := t.TempDir()
	folder := filepath.Join(root, name)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		t.Fatalf("mkdir piece folder: %v", err)
	}
	for _, suffix := range encodingSuffixes {
		WriteFile(t, filepath.Join(folder, name+suffix), []byte("encoding stub"))
	}
	return root
}

// AddPerformanceDir creates a raw performance directory with an audio file
// and, when midiSuffix is non-empty, a MIDI file, bypassing the piece model.
func AddPerformanceDir(t testing.TB, root, pieceName, perfName, audioSuffix, midiSuffix string) string {
	t.Helper()

	dir := filepath.Join(root, pieceName, "performances", perfName)
	WriteFile(t, filepath.Join(dir, perfName+audioSuffix), []byte("audio stub"))
	if midiSuffix != "" {
		WriteFile(t, filepath.Join(dir, perfName+midiSuffix), []byte("midi stub"))
	}
	return dir
}
