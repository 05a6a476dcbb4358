package piece

import (
	"path/filepath"
	"testing"

	"quire/internal/testsupport"
)

func TestDiscoverEncodingsMIDIFallback(t *testing.T) {
	root := testsupport.NewPieceDir(t, "piece", ".midi")
	folder := filepath.Join(root, "piece")

	encodings := discoverEncodings(folder, "piece")
	if encodings[FormatMIDI] != filepath.Join(folder, "piece.midi") {
		t.Fatalf("expected .midi fallback, got %v", encodings)
	}
}

func TestDiscoverEncodingsPrefersMidOverMidi(t *testing.T) {
	root := testsupport.NewPieceDir(t, "piece", ".mid", ".midi")
	folder := filepath.Join(root, "piece")

	encodings := discoverEncodings(folder, "piece")
	if encodings[FormatMIDI] != filepath.Join(folder, "piece.mid") {
		t.Fatalf("expected .mid to win, got %v", encodings)
	}
}

func TestDiscoverEncodingsAbsentKindsAreOmitted(t *testing.T) {
	root := testsupport.NewPieceDir(t, "piece", ".xml")
	folder := filepath.Join(root, "piece")

	encodings := discoverEncodings(folder, "piece")
	if len(encodings) != 1 {
		t.Fatalf("expected only mxml, got %v", encodings)
	}
	if _, ok := encodings[FormatMusicXML]; !ok {
		t.Fatalf("expected mxml entry, got %v", encodings)
	}
}

func TestParseFormat(t *testing.T) {
	for _, value := range []string{"mxml", "ly", "midi", "mei", " LY "} {
		if _, err := ParseFormat(value); err != nil {
			t.Errorf("ParseFormat(%q): %v", value, err)
		}
	}
	if _, err := ParseFormat("wav"); err == nil {
		t.Error("expected error for unsupported format")
	}
}
