// Package logging assembles the structured slog loggers used across quire.
//
// It centralizes level and output plumbing, provides attr helpers and
// standardized field keys so piece and performance operations emit data with
// the same shape everywhere, and exposes a no-op logger for tests and wiring
// code that cannot fail.
package logging
