package piece

import (
	"path/filepath"

	"quire/internal/fsprobe"
)

// discoverEncodings probes folder for the encoding files of a piece named
// name. Each format maps to exactly one candidate filename, except MIDI,
// which falls back from .mid to .midi (one fallback attempt, first match
// wins). Formats with no matching file are absent from the result. The probe
// is read-only and safe to re-run at any time.
func discoverEncodings(folder, name string) map[Format]string {
	encodings := make(map[Format]string, 4)

	if path := filepath.Join(folder, name+".xml"); fsprobe.FileExists(path) {
		encodings[FormatMusicXML] = path
	}
	if path := filepath.Join(folder, name+".ly"); fsprobe.FileExists(path) {
		encodings[FormatLilyPond] = path
	}
	midi := filepath.Join(folder, name+".mid")
	if !fsprobe.FileExists(midi) {
		midi += "i"
	}
	if fsprobe.FileExists(midi) {
		encodings[FormatMIDI] = midi
	}
	if path := filepath.Join(folder, name+".mei"); fsprobe.FileExists(path) {
		encodings[FormatMEI] = path
	}

	return encodings
}
