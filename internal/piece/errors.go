package piece

import "errors"

// Sentinel errors for piece operations. Callers classify failures with
// errors.Is; messages carry the piece, collection, and format context.
var (
	ErrCollectionNotFound  = errors.New("collection not found")
	ErrPieceNotFound       = errors.New("piece not found")
	ErrInvalidFormat       = errors.New("unsupported encoding format")
	ErrMissingAuthority    = errors.New("missing authority encoding")
	ErrPerformanceExists   = errors.New("performance already exists")
	ErrPerformanceNotFound = errors.New("performance not found")
	ErrSourceFileNotFound  = errors.New("source file not found")
	ErrNotImplemented      = errors.New("not implemented")
)
