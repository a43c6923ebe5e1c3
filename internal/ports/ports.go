package ports

import (
	"context"
	"iter"
	"time"

	"github.com/ysraell/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation. Nodes
// counts candidate assignments explored during a search.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver enumerates the completions of a partial grid.
//
// Solve returns every completion, in the engine's deterministic order.
// Solutions yields the same grids in the same order lazily; the caller
// stops the walk by returning from the range body. Count walks until
// limit solutions are seen (limit <= 0 counts them all).
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) ([]domain.Grid, Stats, error)
	Solutions(ctx context.Context, g domain.Grid) iter.Seq[domain.Grid]
	Count(ctx context.Context, g domain.Grid, limit int) (int, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box) on givens.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.Spot, err error)
	Check(ctx context.Context, g domain.Grid) error
}

// Hinter returns the next forced placement when one exists.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error)
}
