package hint

import (
	"context"
	"fmt"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/solver"
)

// Singles implements a minimal Hinter that suggests naked singles: the
// first empty cell, scanning row-major, with exactly one candidate.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	for at, ok := solver.NextEmpty(g, domain.Spot{}); ok; at, ok = solver.NextEmpty(g, at.Next()) {
		cands := solver.Candidates(g, at)
		if cands.Len() != 1 {
			continue
		}
		d := cands.Digits()[0]
		return domain.Hint{
			At:      at,
			Digit:   d,
			Message: fmt.Sprintf("only %d fits here", d),
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
