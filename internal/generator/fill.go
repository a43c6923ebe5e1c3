package generator

import (
	"context"
	"math/rand"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/solver"
)

// fill completes g in place into a full valid grid by depth-first
// assignment over shuffled candidates. It reports false only when the
// context stopped the walk (an empty start grid always completes).
func fill(ctx context.Context, rng *rand.Rand, g *domain.Grid, cursor domain.Spot) bool {
	if ctx.Err() != nil {
		return false
	}
	at, ok := solver.NextEmpty(*g, cursor)
	if !ok {
		return true
	}
	cands := solver.Candidates(*g, at).Digits()
	rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })
	for _, d := range cands {
		g.Set(at, d)
		if fill(ctx, rng, g, at.Next()) {
			return true
		}
		g.Clear(at)
	}
	return false
}
