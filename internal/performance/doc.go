// Package performance loads and validates the performance directories of a
// piece: an audio rendition plus an optional MIDI file, both named after the
// performance.
package performance
