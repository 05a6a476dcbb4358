package piece

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quire/internal/fsprobe"
	"quire/internal/logging"
	"quire/internal/performance"
)

const (
	metadataFilename = "meta.yml"
	performancesDir  = "performances"
	scoresDir        = "scores"

	// defaultOverwritePause is how long AddPerformance waits after logging the
	// overwrite warning before deleting the existing performance. The pause
	// gives operators a chance to notice the warning; the exact duration does
	// not matter.
	defaultOverwritePause = 2 * time.Second
)

// loadPerformanceFunc allows tests to stub the performance collaborator.
type loadPerformanceFunc func(dir, pieceName string) (*performance.Performance, error)

// Piece is the in-memory handle for one piece directory inside a collection.
// It indexes the piece's encodings, performances, and scores, and designates
// one encoding as the authority from which derived artifacts trace.
//
// The index reflects disk state as of the last scan. Update re-derives the
// whole index from disk; every mutating operation calls it so the index never
// claims an artifact that does not exist on disk.
type Piece struct {
	Name           string
	Folder         string
	CollectionRoot string
	PerformanceDir string
	ScoreDir       string

	// Metadata holds the documents of the optional meta.yml file, one mapping
	// per YAML document. Empty when the file is absent.
	Metadata []map[string]any

	encodings       map[Format]string
	authorityFormat Format
	authority       string
	performances    map[string]string
	scores          map[string]string

	logger          *slog.Logger
	loadPerformance loadPerformanceFunc
	overwritePause  time.Duration
}

// New binds a Piece to root/name using the default authority format.
func New(name, root string, logger *slog.Logger) (*Piece, error) {
	return NewWithAuthority(name, root, DefaultFormat, logger)
}

// NewWithAuthority binds a Piece to root/name with the given authority
// format. The collection root and the piece folder must already exist; the
// performances/ and scores/ subdirectories are created when missing. A
// missing meta.yml is logged and tolerated. The requested authority format
// must be backed by a discovered encoding file.
func NewWithAuthority(name, root string, authority Format, logger *slog.Logger) (*Piece, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("piece: name must not be empty")
	}
	if !authority.valid() {
		return nil, fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidFormat, string(authority), formatSetString())
	}
	if !fsprobe.DirectoryExists(root) {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, root)
	}
	folder := filepath.Join(root, name)
	if !fsprobe.DirectoryExists(folder) {
		return nil, fmt.Errorf("%w: piece %s in collection %s", ErrPieceNotFound, name, root)
	}

	p := &Piece{
		Name:            name,
		Folder:          folder,
		CollectionRoot:  root,
		PerformanceDir:  filepath.Join(folder, performancesDir),
		ScoreDir:        filepath.Join(folder, scoresDir),
		loadPerformance: performance.Load,
		overwritePause:  defaultOverwritePause,
	}
	p.logger = logging.NewComponentLogger(logger, "piece").With(logging.String(logging.FieldPiece, name))

	if err := p.ensureStructure(); err != nil {
		return nil, err
	}
	p.Metadata = p.loadMetadata()
	p.encodings = discoverEncodings(p.Folder, p.Name)
	if err := p.setAuthority(authority); err != nil {
		return nil, err
	}
	if err := p.collectArtifacts(); err != nil {
		return nil, err
	}
	return p, nil
}

// SetOverwritePause adjusts the safety pause taken before an overwriting
// AddPerformance deletes the existing performance. Values below zero are
// treated as zero.
func (p *Piece) SetOverwritePause(pause time.Duration) {
	if pause < 0 {
		pause = 0
	}
	p.overwritePause = pause
}

// Encodings returns a copy of the discovered encoding files, keyed by format.
func (p *Piece) Encodings() map[Format]string {
	out := make(map[Format]string, len(p.encodings))
	for format, path := range p.encodings {
		out[format] = path
	}
	return out
}

// Authority returns the current authority format and the path of its
// encoding file. The two always agree.
func (p *Piece) Authority() (Format, string) {
	return p.authorityFormat, p.authority
}

// Performances returns a copy of the performance index: performance name to
// absolute directory path, as of the last scan.
func (p *Piece) Performances() map[string]string {
	out := make(map[string]string, len(p.performances))
	for name, path := range p.performances {
		out[name] = path
	}
	return out
}

// Scores returns a copy of the score index: score name to absolute directory
// path, as of the last scan.
func (p *Piece) Scores() map[string]string {
	out := make(map[string]string, len(p.scores))
	for name, path := range p.scores {
		out[name] = path
	}
	return out
}

// Update re-derives the whole index from disk: encodings are re-discovered,
// the current authority format is re-validated against them, the expected
// subdirectories are re-created when missing, and performances and scores are
// re-collected. This is the sole re-synchronization primitive; call it after
// any out-of-band change to the piece directory.
//
// On failure (typically the authority encoding file disappearing out-of-band)
// the previous index is left untouched.
func (p *Piece) Update() error {
	encodings := discoverEncodings(p.Folder, p.Name)
	authority, ok := encodings[p.authorityFormat]
	if !ok {
		return p.missingAuthorityError(p.authorityFormat, encodings)
	}
	if err := p.ensureStructure(); err != nil {
		return err
	}
	performances, err := p.collectPerformances()
	if err != nil {
		return err
	}
	scores, err := p.collectScores()
	if err != nil {
		return err
	}

	p.encodings = encodings
	p.authority = authority
	p.performances = performances
	p.scores = scores
	return nil
}

// SetAuthority re-selects the authority encoding. The format must be one of
// the recognized set and must be backed by a currently discovered encoding
// file; on failure the previous authority is left untouched.
func (p *Piece) SetAuthority(format Format) error {
	if err := p.setAuthority(format); err != nil {
		return err
	}
	p.logger.Info("authority encoding selected",
		logging.String(logging.FieldFormat, string(format)),
		logging.String(logging.FieldPath, p.authority),
	)
	return nil
}

// setAuthority swaps authorityFormat and authority together so they can
// never be observed inconsistent.
func (p *Piece) setAuthority(format Format) error {
	if !format.valid() {
		return fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidFormat, string(format), formatSetString())
	}
	path, ok := p.encodings[format]
	if !ok {
		return p.missingAuthorityError(format, p.encodings)
	}
	p.authorityFormat = format
	p.authority = path
	return nil
}

func (p *Piece) missingAuthorityError(format Format, encodings map[Format]string) error {
	return fmt.Errorf("%w: piece %s in collection %s has no %s encoding (available: %s)",
		ErrMissingAuthority, p.Name, p.CollectionRoot, format, formatKeys(encodings))
}

// ensureStructure creates the performances/ and scores/ subdirectories when
// missing. Idempotent.
func (p *Piece) ensureStructure() error {
	for _, dir := range []string{p.PerformanceDir, p.ScoreDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure piece structure: %w", err)
		}
	}
	return nil
}

func (p *Piece) collectArtifacts() error {
	performances, err := p.collectPerformances()
	if err != nil {
		return err
	}
	scores, err := p.collectScores()
	if err != nil {
		return err
	}
	p.performances = performances
	p.scores = scores
	return nil
}

func (p *Piece) collectPerformances() (map[string]string, error) {
	names, err := fsprobe.ListSubdirectories(p.PerformanceDir)
	if err != nil {
		return nil, fmt.Errorf("collect performances: %w", err)
	}
	performances := make(map[string]string, len(names))
	for _, name := range names {
		performances[name] = filepath.Join(p.PerformanceDir, name)
	}
	return performances, nil
}

func (p *Piece) collectScores() (map[string]string, error) {
	names, err := fsprobe.ListSubdirectories(p.ScoreDir)
	if err != nil {
		return nil, fmt.Errorf("collect scores: %w", err)
	}
	scores := make(map[string]string, len(names))
	for _, name := range names {
		scores[name] = filepath.Join(p.ScoreDir, name)
	}
	return scores, nil
}

// loadMetadata reads the optional meta.yml descriptors. Absence is expected
// for many pieces and only logged.
func (p *Piece) loadMetadata() []map[string]any {
	path := filepath.Join(p.Folder, metadataFilename)
	docs, err := fsprobe.LoadYAMLMapping(path)
	if err != nil {
		p.logger.Warn("failed to parse piece metadata",
			logging.String(logging.FieldPath, path),
			logging.Error(err),
		)
		return nil
	}
	if docs == nil {
		p.logger.Warn("piece has no metadata file",
			logging.String(logging.FieldPath, path),
		)
	}
	return docs
}
