package piece

import (
	"fmt"

	"quire/internal/score"
)

// LoadScore is a stable extension point for the score collaborator, which is
// not implemented yet. It still re-scans the piece first so a future
// implementation inherits the index-refresh behaviour of LoadPerformance.
func (p *Piece) LoadScore(name string) (*score.Score, error) {
	if err := p.Update(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%w: score loading", ErrNotImplemented)
}

// LoadAllScores is a stable extension point for the score collaborator.
func (p *Piece) LoadAllScores() ([]*score.Score, error) {
	return nil, fmt.Errorf("%w: score loading", ErrNotImplemented)
}
