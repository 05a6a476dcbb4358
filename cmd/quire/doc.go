// Command quire is the CLI for managing a collection of musical pieces on
// disk: listing pieces, inspecting encodings and authority selection, and
// adding or removing performances. The piece data model itself lives in
// internal/piece; the CLI is a thin surface over it that also takes the
// collection's single-writer lock around mutating commands.
package main
