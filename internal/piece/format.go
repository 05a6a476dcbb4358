package piece

import (
	"fmt"
	"sort"
	"strings"
)

// Format identifies a symbolic encoding kind a piece can carry. The set is
// closed: only the constants below are valid values.
type Format string

const (
	// FormatMusicXML is a MusicXML score encoding (<name>.xml).
	FormatMusicXML Format = "mxml"
	// FormatLilyPond is a LilyPond source encoding (<name>.ly).
	FormatLilyPond Format = "ly"
	// FormatMIDI is a MIDI encoding (<name>.mid, falling back to <name>.midi).
	FormatMIDI Format = "midi"
	// FormatMEI is an MEI score encoding (<name>.mei).
	FormatMEI Format = "mei"
)

// DefaultFormat is the authority encoding used when callers do not request
// one explicitly.
const DefaultFormat = FormatLilyPond

// Formats returns the recognized encoding formats in discovery probe order.
func Formats() []Format {
	return []Format{FormatMusicXML, FormatLilyPond, FormatMIDI, FormatMEI}
}

// ParseFormat validates a user-supplied format string.
func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(value)))
	if !format.valid() {
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrInvalidFormat, value, formatSetString())
	}
	return format, nil
}

func (f Format) String() string { return string(f) }

func (f Format) valid() bool {
	switch f {
	case FormatMusicXML, FormatLilyPond, FormatMIDI, FormatMEI:
		return true
	}
	return false
}

func formatSetString() string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// formatKeys renders the keys of an encoding map for diagnostics, sorted so
// error messages are stable.
func formatKeys(encodings map[Format]string) string {
	names := make([]string, 0, len(encodings))
	for f := range encodings {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
