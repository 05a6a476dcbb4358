package collection

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"quire/internal/piece"
	"quire/internal/testsupport"
)

func TestOpenMissingRoot(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), piece.DefaultFormat, nil)
	if !errors.Is(err, piece.ErrCollectionNotFound) {
		t.Fatalf("expected ErrCollectionNotFound, got %v", err)
	}
}

func TestPiecesSortedAndFiltered(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"mozart_k331", "bach_bwv846", ".hidden"} {
		if err := os.Mkdir(filepath.Join(root, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	testsupport.WriteFile(t, filepath.Join(root, "stray.txt"), []byte("x"))

	c, err := Open(root, piece.DefaultFormat, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	names, err := c.Pieces()
	if err != nil {
		t.Fatalf("pieces: %v", err)
	}
	if len(names) != 2 || names[0] != "bach_bwv846" || names[1] != "mozart_k331" {
		t.Fatalf("unexpected listing: %v", names)
	}
}

func TestPieceOpensWithDefaultAuthority(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly")

	c, err := Open(root, piece.FormatLilyPond, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	p, err := c.Piece("bach_bwv846")
	if err != nil {
		t.Fatalf("piece: %v", err)
	}
	format, _ := p.Authority()
	if format != piece.FormatLilyPond {
		t.Fatalf("authority %s, want ly", format)
	}
}

func TestPieceWithAuthorityOverride(t *testing.T) {
	root := testsupport.NewPieceDir(t, "bach_bwv846", ".ly", ".mid")

	c, err := Open(root, piece.FormatLilyPond, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	p, err := c.PieceWithAuthority("bach_bwv846", piece.FormatMIDI)
	if err != nil {
		t.Fatalf("piece: %v", err)
	}
	format, _ := p.Authority()
	if format != piece.FormatMIDI {
		t.Fatalf("authority %s, want midi", format)
	}
}

func TestLockIsExclusive(t *testing.T) {
	root := t.TempDir()
	c, err := Open(root, piece.DefaultFormat, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	release, err := c.Lock()
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
	if _, err := c.Lock(); err == nil {
		t.Fatal("expected second lock to fail while held")
	}
	release()
	release2, err := c.Lock()
	if err != nil {
		t.Fatalf("relock after release: %v", err)
	}
	release2()
}
