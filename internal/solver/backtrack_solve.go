package solver

import (
	"context"
	"time"

	"github.com/ysraell/sudoku/internal/domain"
	"github.com/ysraell/sudoku/internal/ports"
)

// Solve returns every completion of g in discovery order. A grid with
// no completion yields an empty slice and no error, and a grid with no
// empty cell comes back unchanged as the sole solution, unvalidated.
// The walk stops early only when ctx is done, reported as ctx.Err().
func (s *BacktrackingSolver) Solve(ctx context.Context, g domain.Grid) ([]domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var out []domain.Grid
	walk(ctx, g, domain.Spot{}, &nodes, func(sol domain.Grid) bool {
		out = append(out, sol)
		return true
	})
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	return out, st, nil
}
