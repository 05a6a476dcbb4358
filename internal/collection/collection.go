package collection

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"quire/internal/fsprobe"
	"quire/internal/logging"
	"quire/internal/piece"
)

const lockFilename = ".quire.lock"

// Collection binds to a directory holding one subdirectory per piece.
type Collection struct {
	Root string

	defaultAuthority piece.Format
	logger           *slog.Logger
}

// Open binds to an existing collection root. Pieces opened through the
// collection use defaultAuthority as their authority encoding.
func Open(root string, defaultAuthority piece.Format, logger *slog.Logger) (*Collection, error) {
	root = strings.TrimSpace(root)
	if !fsprobe.DirectoryExists(root) {
		return nil, fmt.Errorf("%w: %s", piece.ErrCollectionNotFound, root)
	}
	return &Collection{
		Root:             root,
		defaultAuthority: defaultAuthority,
		logger:           logging.NewComponentLogger(logger, "collection"),
	}, nil
}

// Pieces lists the piece names in the collection, sorted with a locale-aware
// collator so listings are stable across filesystems. Hidden directories are
// skipped.
func (c *Collection) Pieces() ([]string, error) {
	names, err := fsprobe.ListSubdirectories(c.Root)
	if err != nil {
		return nil, fmt.Errorf("list collection: %w", err)
	}
	pieces := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, ".") {
			continue
		}
		pieces = append(pieces, name)
	}
	collate.New(language.Und, collate.Loose).SortStrings(pieces)
	return pieces, nil
}

// Piece opens the named piece with the collection's default authority format.
func (c *Collection) Piece(name string) (*piece.Piece, error) {
	return piece.NewWithAuthority(name, c.Root, c.defaultAuthority, c.logger)
}

// PieceWithAuthority opens the named piece with an explicit authority format.
func (c *Collection) PieceWithAuthority(name string, format piece.Format) (*piece.Piece, error) {
	return piece.NewWithAuthority(name, c.Root, format, c.logger)
}

// Lock acquires the collection's advisory single-writer lock and returns the
// release function. The piece model itself assumes a single writer; the lock
// lets tooling enforce that assumption across processes.
func (c *Collection) Lock() (func(), error) {
	lock := flock.New(filepath.Join(c.Root, lockFilename))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire collection lock: %w", err)
	}
	if !ok {
		return nil, errors.New("collection is locked by another quire process")
	}
	return func() { _ = lock.Unlock() }, nil
}
