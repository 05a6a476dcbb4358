package performance

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadAudioOnly(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "take1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "take1.wav"))

	perf, err := Load(dir, "bach_bwv846")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if perf.Name != "take1" || perf.PieceName != "bach_bwv846" {
		t.Fatalf("unexpected handle: %+v", perf)
	}
	if perf.Audio != filepath.Join(dir, "take1.wav") {
		t.Fatalf("unexpected audio path: %q", perf.Audio)
	}
	if perf.MIDI != "" {
		t.Fatalf("expected no midi, got %q", perf.MIDI)
	}
}

func TestLoadAudioAndMIDI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "take1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "take1.flac"))
	writeFile(t, filepath.Join(dir, "take1.mid"))

	perf, err := Load(dir, "bach_bwv846")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if perf.MIDI != filepath.Join(dir, "take1.mid") {
		t.Fatalf("unexpected midi path: %q", perf.MIDI)
	}
}

func TestLoadIgnoresUnrelatedFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "take1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "take1.wav"))
	writeFile(t, filepath.Join(dir, "other.wav"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	perf, err := Load(dir, "p")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if filepath.Base(perf.Audio) != "take1.wav" {
		t.Fatalf("unexpected audio: %q", perf.Audio)
	}
}

func TestLoadMissingAudio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "take1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "take1.mid"))

	if _, err := Load(dir, "p"); !errors.Is(err, ErrInvalidPerformance) {
		t.Fatalf("expected ErrInvalidPerformance, got %v", err)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope"), "p"); !errors.Is(err, ErrInvalidPerformance) {
		t.Fatalf("expected ErrInvalidPerformance, got %v", err)
	}
}

func TestLoadRejectsDuplicateAudio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "take1")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "take1.wav"))
	writeFile(t, filepath.Join(dir, "take1.flac"))

	if _, err := Load(dir, "p"); !errors.Is(err, ErrInvalidPerformance) {
		t.Fatalf("expected ErrInvalidPerformance, got %v", err)
	}
}
