package generator

import "github.com/ysraell/sudoku/internal/ports"

// UniqueGenerator carves puzzles with a unique solution, using the
// provided Solver to count completions of each carving step.
type UniqueGenerator struct {
	Solver ports.Solver
}

// NewUniqueGenerator wires a generator around the given solver.
func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
