package solver

import (
	"context"

	"github.com/ysraell/sudoku/internal/domain"
)

// BacktrackingSolver enumerates the completions of a grid by
// depth-first search: fill the next empty cell with each of its
// candidates in ascending order and recurse on a copy per branch.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// walk visits every completion of g reachable at or after cursor, in
// ascending candidate order, calling yield once per filled grid. It
// returns false as soon as yield or ctx asks to stop. nodes counts
// candidate assignments.
//
// A cell with no candidates simply contributes zero branches; the only
// way a walk ends early is the consumer or the context.
func walk(ctx context.Context, g domain.Grid, cursor domain.Spot, nodes *int, yield func(domain.Grid) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	at, ok := NextEmpty(g, cursor)
	if !ok {
		return yield(g)
	}
	for _, d := range Candidates(g, at).Digits() {
		*nodes++
		next := g.Clone()
		next.Set(at, d)
		if !walk(ctx, next, at.Next(), nodes, yield) {
			return false
		}
	}
	return true
}
