// Package piece implements the on-disk entity model for a single musical
// piece: discovery and validation of its encoding files, the authority
// encoding that all derived artifacts trace back to, and the mutable index of
// performances and scores kept consistent with the piece directory.
//
// A Piece binds to an existing directory under a collection root and eagerly
// scans it. Queries read the cached index; Update re-derives the whole index
// from disk. Mutations write to disk first and then refresh the index, so the
// in-memory state never claims an artifact that does not exist on disk.
//
// The model is single-writer and synchronous: no locking is provided, and
// concurrent mutation of the same piece directory is undefined behaviour.
package piece
