// Package score declares the score collaborator contract. Score loading is
// not implemented yet; the type documents the intended shape so the piece
// model can expose a stable extension point.
package score

// Score will be the handle for one rendered-sheet directory of a piece. Its
// internal layout is owned by the score tooling, not by the piece model.
type Score struct {
	Name      string
	Dir       string
	PieceName string
}
