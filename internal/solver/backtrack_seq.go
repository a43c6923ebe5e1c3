package solver

import (
	"context"
	"iter"
	"time"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/ports"
)

// Solutions yields the completions of g lazily, in the same order
// Solve returns them. The search runs only as far as the consumer
// ranges; breaking out of the loop stops it.
func (s *BacktrackingSolver) Solutions(ctx context.Context, g domain.Grid) iter.Seq[domain.Grid] {
	return func(yield func(domain.Grid) bool) {
		nodes := 0
		walk(ctx, g, domain.Spot{}, &nodes, yield)
	}
}

// Count walks the completions of g and reports how many were seen,
// stopping once limit is reached. limit <= 0 counts them all. A
// Count(ctx, g, 2) == 1 is the cheap uniqueness test.
func (s *BacktrackingSolver) Count(ctx context.Context, g domain.Grid, limit int) (int, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0
	walk(ctx, g, domain.Spot{}, &nodes, func(domain.Grid) bool {
		count++
		return limit <= 0 || count < limit
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return count, st, err
	}
	return count, st, nil
}
