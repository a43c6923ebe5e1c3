package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/ports"
)

// carveDeadline bounds how long Generate keeps trying removals.
const carveDeadline = 900 * time.Millisecond

func targetGivens(d domain.Difficulty) int {
	switch d {
	case domain.Easy:
		return 40
	case domain.Medium:
		return 34
	case domain.Hard:
		return 28
	default:
		return 24 // Expert
	}
}

// Generate builds a full random solution for seed, then carves cells
// in shuffled order, keeping each removal only while the puzzle still
// has exactly one completion. Carving stops at the difficulty's givens
// target or at a soft deadline, whichever comes first, so the same
// seed on slow hardware may keep a few extra givens.
func (g *UniqueGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var full domain.Grid
	if !fill(ctx, rng, &full, domain.Spot{}) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
		return nil, ports.Stats{Duration: time.Since(start)}, errors.New("sudoku: could not fill a grid")
	}

	givens := full.Clone()
	target := targetGivens(diff)
	deadline := start.Add(carveDeadline)
	nodes := 0

	for _, pos := range rng.Perm(81) {
		if givens.FilledCount() <= target || time.Now().After(deadline) {
			break
		}
		at := domain.Spot{Row: pos / 9, Col: pos % 9}
		d, ok := givens.Get(at)
		if !ok {
			continue
		}
		givens.Clear(at)
		n, st, err := g.Solver.Count(ctx, givens, 2)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if n != 1 {
			givens.Set(at, d)
		}
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Givens:     givens,
		Solution:   full,
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
