package piece

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"quire/internal/fileutil"
	"quire/internal/fsprobe"
	"quire/internal/logging"
	"quire/internal/performance"
)

// LoadPerformance re-scans the piece, resolves the named performance
// directory, and hands it to the performance loader. The loader validates the
// directory structure; its failures propagate to the caller.
func (p *Piece) LoadPerformance(name string) (*performance.Performance, error) {
	if err := p.Update(); err != nil {
		return nil, err
	}
	dir, ok := p.performances[name]
	if !ok {
		return nil, fmt.Errorf("%w: piece %s has no performance %q (available: %s)",
			ErrPerformanceNotFound, p.Name, name, strings.Join(p.performanceNames(), ", "))
	}
	return p.loadPerformance(dir, p.Name)
}

// LoadAllPerformances loads every currently-known performance. The order
// follows the index's enumeration order, which is filesystem-listing order;
// callers must not depend on it.
func (p *Piece) LoadAllPerformances() ([]*performance.Performance, error) {
	names := make([]string, 0, len(p.performances))
	for name := range p.performances {
		names = append(names, name)
	}
	performances := make([]*performance.Performance, 0, len(names))
	for _, name := range names {
		perf, err := p.LoadPerformance(name)
		if err != nil {
			return nil, err
		}
		performances = append(performances, perf)
	}
	return performances, nil
}

// AddPerformance creates a new performance from an existing audio file and an
// optional MIDI file. Both sources are copied into the performance directory
// renamed to the performance name plus their original extensions. The new
// directory is staged inside the piece folder and renamed into place in one
// step, so a failed add leaves no partial performance behind.
//
// When name already exists, overwrite=false fails with ErrPerformanceExists;
// overwrite=true logs a warning, pauses, then removes the existing
// performance before proceeding.
func (p *Piece) AddPerformance(ctx context.Context, name, audioFile, midiFile string, overwrite bool) error {
	if err := p.Update(); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("piece: performance name must not be empty")
	}

	// Source checks come before the destructive overwrite path so a bad call
	// cannot delete the existing performance and then fail to replace it.
	if !fsprobe.FileExists(audioFile) {
		return fmt.Errorf("%w: audio file %s", ErrSourceFileNotFound, audioFile)
	}
	if midiFile != "" && !fsprobe.FileExists(midiFile) {
		return fmt.Errorf("%w: midi file %s", ErrSourceFileNotFound, midiFile)
	}

	if _, ok := p.performances[name]; ok {
		if !overwrite {
			return fmt.Errorf("%w: piece %s already has performance %q", ErrPerformanceExists, p.Name, name)
		}
		p.logger.WarnContext(ctx, "performance exists, overwriting after pause",
			logging.String(logging.FieldPerformance, name),
			logging.Duration("pause", p.overwritePause),
		)
		if p.overwritePause > 0 {
			time.Sleep(p.overwritePause)
		}
		if err := p.RemovePerformance(ctx, name); err != nil {
			return err
		}
	}

	staging := filepath.Join(p.Folder, ".staging-"+uuid.NewString())
	if err := os.Mkdir(staging, 0o755); err != nil {
		return fmt.Errorf("create staging directory: %w", err)
	}
	defer func() {
		// No-op after a successful rename.
		_ = os.RemoveAll(staging)
	}()

	if err := fileutil.CopyFileVerified(audioFile, filepath.Join(staging, name+filepath.Ext(audioFile))); err != nil {
		return fmt.Errorf("copy performance audio: %w", err)
	}
	if midiFile != "" {
		if err := fileutil.CopyFileVerified(midiFile, filepath.Join(staging, name+filepath.Ext(midiFile))); err != nil {
			return fmt.Errorf("copy performance midi: %w", err)
		}
	}

	target := filepath.Join(p.PerformanceDir, name)
	if fsprobe.DirectoryExists(target) {
		return fmt.Errorf("%w: piece %s already has performance %q", ErrPerformanceExists, p.Name, name)
	}
	if err := os.Rename(staging, target); err != nil {
		return fmt.Errorf("commit performance %q: %w", name, err)
	}

	if err := p.Update(); err != nil {
		return err
	}
	// Test-load the result so the collaborator validates the new directory.
	if _, err := p.LoadPerformance(name); err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "performance added",
		logging.String(logging.FieldPerformance, name),
		logging.String(logging.FieldPath, target),
		logging.Bool("with_midi", midiFile != ""),
	)
	return nil
}

// RemovePerformance deletes the named performance directory. Removing a
// performance that does not exist is a logged no-op, not an error.
func (p *Piece) RemovePerformance(ctx context.Context, name string) error {
	if err := p.Update(); err != nil {
		return err
	}
	dir, ok := p.performances[name]
	if !ok {
		p.logger.WarnContext(ctx, "performance does not exist, nothing to remove",
			logging.String(logging.FieldPerformance, name),
		)
		return nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove performance %q: %w", name, err)
	}
	p.logger.InfoContext(ctx, "performance removed",
		logging.String(logging.FieldPerformance, name),
		logging.String(logging.FieldPath, dir),
	)
	return p.Update()
}

// ClearPerformances removes every currently-known performance. The name set
// is snapshotted first because each removal re-scans the index.
func (p *Piece) ClearPerformances(ctx context.Context) error {
	names := p.performanceNames()
	for _, name := range names {
		if err := p.RemovePerformance(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (p *Piece) performanceNames() []string {
	names := make([]string, 0, len(p.performances))
	for name := range p.performances {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
