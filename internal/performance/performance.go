package performance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidPerformance marks a performance directory whose structure does
// not match the expected layout.
var ErrInvalidPerformance = errors.New("invalid performance directory")

var audioExtensions = map[string]struct{}{
	".wav":  {},
	".flac": {},
	".mp3":  {},
	".ogg":  {},
	".aiff": {},
	".m4a":  {},
}

var midiExtensions = map[string]struct{}{
	".mid":  {},
	".midi": {},
}

// Performance is the handle for one performance directory of a piece. The
// directory carries an audio rendition named after the performance and,
// optionally, a matching MIDI file.
type Performance struct {
	Name      string
	Dir       string
	PieceName string
	// Audio is the absolute path of the performance audio file.
	Audio string
	// MIDI is the absolute path of the performance MIDI file; empty when the
	// performance has none.
	MIDI string
}

// Load validates dir as a performance directory of the named piece and
// returns its handle. The directory must contain exactly one audio file named
// after the performance; a MIDI file with the same stem is optional.
func Load(dir, pieceName string) (*Performance, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidPerformance, dir)
	}
	name := filepath.Base(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read performance directory: %w", err)
	}

	perf := &Performance{Name: name, Dir: dir, PieceName: pieceName}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		ext := strings.ToLower(filepath.Ext(filename))
		if strings.TrimSuffix(filename, filepath.Ext(filename)) != name {
			continue
		}
		if _, ok := audioExtensions[ext]; ok {
			if perf.Audio != "" {
				return nil, fmt.Errorf("%w: %s holds more than one audio file for %q", ErrInvalidPerformance, dir, name)
			}
			perf.Audio = filepath.Join(dir, filename)
			continue
		}
		if _, ok := midiExtensions[ext]; ok {
			if perf.MIDI != "" {
				return nil, fmt.Errorf("%w: %s holds more than one midi file for %q", ErrInvalidPerformance, dir, name)
			}
			perf.MIDI = filepath.Join(dir, filename)
		}
	}

	if perf.Audio == "" {
		return nil, fmt.Errorf("%w: %s has no audio file named %q", ErrInvalidPerformance, dir, name)
	}
	return perf, nil
}
