// Package fsprobe provides stateless read-only filesystem inspection helpers
// for the piece model: existence checks, immediate-subdirectory listings, and
// YAML metadata loading. Nothing here writes to disk.
package fsprobe
